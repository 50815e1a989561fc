package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"saffron/internal/domain"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Manage environments for {{variable}} substitution",
}

var envListCmd = &cobra.Command{
	Use:   "list",
	Short: "List environments",
	Args:  cobra.NoArgs,
	RunE:  runEnvList,
}

var envSetCmd = &cobra.Command{
	Use:   "set NAME key=value...",
	Short: "Set variables in an environment, creating it if needed",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEnvSet,
}

var envShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show the variables of an environment",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnvShow,
}

var envDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete an environment",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnvDelete,
}

var envUseCmd = &cobra.Command{
	Use:   "use NAME",
	Short: "Mark an environment as active",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnvUse,
}

func init() {
	envCmd.AddCommand(envListCmd)
	envCmd.AddCommand(envSetCmd)
	envCmd.AddCommand(envShowCmd)
	envCmd.AddCommand(envDeleteCmd)
	envCmd.AddCommand(envUseCmd)
}

func runEnvList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	set, err := a.store.LoadEnvironmentSet()
	if err != nil {
		return err
	}
	if len(set.Environments) == 0 {
		a.printer.Info("no environments yet, create one with 'saffron env set'")
		return nil
	}
	for _, env := range set.Environments {
		marker := " "
		if env.Name == set.Active {
			marker = "*"
		}
		a.printer.Printf("%s %s (%d variables)\n", marker, env.Name, len(env.Variables))
	}
	return nil
}

func runEnvSet(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	set, err := a.store.LoadEnvironmentSet()
	if err != nil {
		return err
	}

	name := args[0]
	env, ok := set.Get(name)
	if !ok {
		set.Add(*domain.NewEnvironment(name))
		env, _ = set.Get(name)
	}
	for _, pair := range args[1:] {
		key, value, err := parseKeyValue(pair)
		if err != nil {
			return err
		}
		env.Set(key, value)
	}

	if err := a.store.SaveEnvironmentSet(set); err != nil {
		return err
	}
	a.printer.Success("updated environment '%s'", name)
	return nil
}

func runEnvShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	set, err := a.store.LoadEnvironmentSet()
	if err != nil {
		return err
	}
	env, ok := set.Get(args[0])
	if !ok {
		return fmt.Errorf("no such environment: %s", args[0])
	}

	a.printer.Printf("%s\n", env.Name)
	keys := make([]string, 0, len(env.Variables))
	for key := range env.Variables {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		a.printer.Printf("  %s = %s\n", key, env.Variables[key])
	}
	return nil
}

func runEnvDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	set, err := a.store.LoadEnvironmentSet()
	if err != nil {
		return err
	}
	if !set.Remove(args[0]) {
		return fmt.Errorf("no such environment: %s", args[0])
	}
	if err := a.store.SaveEnvironmentSet(set); err != nil {
		return err
	}
	a.printer.Success("deleted environment '%s'", args[0])
	return nil
}

func runEnvUse(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	set, err := a.store.LoadEnvironmentSet()
	if err != nil {
		return err
	}
	if _, ok := set.Get(args[0]); !ok {
		return fmt.Errorf("no such environment: %s", args[0])
	}
	set.SetActive(args[0])
	if err := a.store.SaveEnvironmentSet(set); err != nil {
		return err
	}
	a.printer.Success("using environment '%s'", args[0])
	return nil
}
