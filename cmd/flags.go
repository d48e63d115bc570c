package cmd

import "flag"

// globalFlags lists the global flags, so that shell completion can offer them.
var globalFlags []string

func flagString(name, value, usage string) *string {
	globalFlags = append(globalFlags, name)
	return flag.String(name, value, usage)
}

func flagBool(name string, value bool, usage string) *bool {
	globalFlags = append(globalFlags, name)
	return flag.Bool(name, value, usage)
}
