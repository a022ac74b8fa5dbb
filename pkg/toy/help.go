package toy

import "github.com/charmbracelet/bubbles/key"

// Helper is implemented by units that want their key bindings listed in
// the host's help bar.
type Helper interface {
	Bindings() []key.Binding
}
