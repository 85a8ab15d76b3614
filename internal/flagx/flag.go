// Package flagx contains helpers for carving a subset of command-line
// arguments out of os.Args so that independent flag sets can coexist
// without tripping over each other's flags.
package flagx

import (
	"os"
	"strings"
)

// FilterArgs returns only the arguments whose flag names appear in
// allowedFlags, together with their values.
//
// Both forms are recognized:
//
//	-a http://host:8000
//	--config=conf.json
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// A following non-flag argument is this flag's value.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// JsonConfigFlags scans os.Args for -c/-config and returns the JSON config
// file path, or "" when the flag is absent. It deliberately avoids the flag
// package: the config file path has to be known before any flag set is built.
func JsonConfigFlags() string {
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, name := range []string{"-c", "-config", "--config"} {
			if arg == name {
				if i+1 < len(args) {
					return args[i+1]
				}
				return ""
			}
			if strings.HasPrefix(arg, name+"=") {
				return strings.TrimPrefix(arg, name+"=")
			}
		}
	}
	return ""
}
