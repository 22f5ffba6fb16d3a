// Package flags reads values of cobra command flags, exiting when a flag is
// not registered on the command.
package flags

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

// MustGetDefinedString returns the value of flagName, exiting when it is empty.
func MustGetDefinedString(flagName string, flags *pflag.FlagSet) string {
	flagVal := MustGetString(flagName, flags)
	if flagVal == "" {
		glog.Fatal(undefinedValueMessage(flagName))
	}
	return flagVal
}

func MustGetString(flagName string, flags *pflag.FlagSet) string {
	flagVal, err := flags.GetString(flagName)
	if err != nil {
		glog.Fatal(notFoundMessage(flagName, err))
	}
	return flagVal
}

func MustGetBool(flagName string, flags *pflag.FlagSet) bool {
	flagVal, err := flags.GetBool(flagName)
	if err != nil {
		glog.Fatal(notFoundMessage(flagName, err))
	}
	return flagVal
}

func undefinedValueMessage(flagName string) string {
	return fmt.Sprintf("flag %s has undefined value", flagName)
}

func notFoundMessage(flagName string, err error) string {
	return fmt.Sprintf("could not get flag %s from flag set: %s", flagName, err.Error())
}
