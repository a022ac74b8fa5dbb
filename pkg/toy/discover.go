package toy

import (
	"fmt"
	"io/fs"
	"log/slog"
)

// Discover reads the top level of each source for definition files and
// builds one unit per file, keyed by file name without extension.
//
// Files that fail to decode, name an unknown kind, or whose factory fails
// are logged and skipped. The same name appearing twice, in one source or
// across sources, is an error. A source that cannot be listed is an error.
func Discover(env Env, logger *slog.Logger, sources ...fs.FS) (map[string]Unit, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	units := make(map[string]Unit)
	origin := make(map[string]string)

	for si, src := range sources {
		entries, err := fs.ReadDir(src, ".")
		if err != nil {
			return nil, fmt.Errorf("toy: list source %d: %w", si, err)
		}

		for _, e := range entries {
			if e.IsDir() || !IsDefinitionFile(e.Name()) {
				continue
			}
			file := e.Name()
			name := NameOf(file)
			where := fmt.Sprintf("source %d/%s", si, file)

			if prev, dup := origin[name]; dup {
				return nil, fmt.Errorf("toy: duplicate name %q in %s and %s", name, prev, where)
			}

			data, err := fs.ReadFile(src, file)
			if err != nil {
				logger.Warn("skipping unreadable toy definition", "file", where, "error", err)
				continue
			}

			def, err := Decode(file, data)
			if err != nil {
				logger.Warn("skipping malformed toy definition", "file", where, "error", err)
				continue
			}

			factory, ok := lookupKind(def.Kind)
			if !ok {
				logger.Warn("skipping toy with unknown kind", "file", where, "kind", def.Kind)
				continue
			}

			u, err := factory(name, def, env)
			if err != nil {
				logger.Warn("skipping toy that failed to build", "file", where, "kind", def.Kind, "error", err)
				continue
			}

			units[name] = u
			origin[name] = where
			logger.Debug("discovered toy", "name", name, "kind", def.Kind, "file", where)
		}
	}

	return units, nil
}
