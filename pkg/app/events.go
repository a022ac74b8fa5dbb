// Package app is the gallery shell: a Bubbletea root model that draws a
// sidebar of toys next to the active toy and routes input between them.
//
// The shell only talks to the registry and to toy.Unit. It never knows
// which kinds of toys exist.
package app

// SelectToyMsg asks the shell to make the named toy active. Unknown names
// are ignored.
type SelectToyMsg struct {
	Name string
}

// navZone is the click zone id of a sidebar entry.
func navZone(name string) string {
	return "nav:" + name
}
