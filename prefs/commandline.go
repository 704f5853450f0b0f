// This file is part of gslib.
//
// gslib is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gslib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gslib.  If not, see <https://www.gnu.org/licenses/>.


package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// group is one set of values added to the command line stack. values are
// removed from the group as they are used.
type group map[string]Value

// String returns the values in the group in the form accepted by
// PushCommandLineStack(), ordered by key.
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s::%v", k, g[k]))
	}
	return strings.Join(pairs, "; ")
}

// only the top group is ever consulted
var commandLineStack []group

func top() group {
	if len(commandLineStack) == 0 {
		return nil
	}
	return commandLineStack[len(commandLineStack)-1]
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack adds a group of values to the stack. The string is a
// list of key::value pairs separated by semicolons. Space around keys and
// values is ignored and pairs without a separator are skipped.
//
//	driver.buffers::3; driver.mode::PAL
func PushCommandLineStack(prefs string) {
	g := make(group)
	for _, p := range strings.Split(prefs, ";") {
		if k, v, ok := strings.Cut(p, "::"); ok {
			g[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	commandLineStack = append(commandLineStack, g)
}

// PopCommandLineStack removes the top group from the stack and returns the
// values in it that were never used. An empty stack returns the empty string.
func PopCommandLineStack() string {
	g := top()
	if g == nil {
		return ""
	}
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return g.String()
}

// GetCommandLinePref returns the value for the key in the top group. A value
// is only returned once.
func GetCommandLinePref(key string) (bool, Value) {
	g := top()
	v, ok := g[key]
	if ok {
		delete(g, key)
	}
	return ok, v
}
