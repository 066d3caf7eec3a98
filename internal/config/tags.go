package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

type parseOptions struct {
	Parent                  *parseOptions
	EnvPrefix               string
	EnvIsDisabled           bool
	FlagPrefix              string
	Category                string
	AlreadyHasDefaultValues bool
	RequiredByDefault       bool
}

// For apps with a yaml config + env
var CommonParseOptions = parseOptions{
	AlreadyHasDefaultValues: true,
	RequiredByDefault:       true,
}

// For env-only apps
var DefaultParseOptions = parseOptions{
	RequiredByDefault: true,
}

var (
	tagNameEnv        = "env"        // replaces the part after the env prefix. env:"-" disables env input.
	tagNameEnvPrefix  = "envprefix"  // overrides the env prefix entirely (envprefix:"APP2", envprefix:"")
	tagNameFlag       = "flag"       // replaces the part after the flag prefix. flag:"-" disables the flag.
	tagNameFlagPrefix = "flagprefix" // overrides the flag prefix entirely
	tagNameCLI        = "cli"        // comma-separated options: hidden,required,optional. cli:"-" skips the field.
	tagNameUsage      = "usage"      // description (usage:"does something")
	tagNameDefault    = "default"    // default value (default:"10")
	tagNameCategory   = "category"   // category in the help command
)

// For apps without subcommands.
// opts:
//   - CommonParseOptions - apps with a yaml config + env.
//   - DefaultParseOptions - env-only apps.
func CommonHelp(name, usage, description string, cfg any, opts parseOptions) error {
	helpWasCalled, err := WorkHelp(name, usage, description, cfg, opts)
	if helpWasCalled && err == nil {
		os.Exit(0)
	}

	return err
}

func WorkHelp(name, usage, description string, cfg any, opts parseOptions) (bool, error) {
	flags, err := parseFlags(cfg, opts)
	if err != nil {
		return false, fmt.Errorf("ParseFlags: %w", err)
	}

	var helpWasCalled bool

	original := cli.HelpPrinterCustom
	cli.HelpPrinterCustom = func(w io.Writer, templ string, data any, customFunc map[string]any) {
		helpWasCalled = true

		original(w, templ, data, customFunc)
	}

	cmd := &cli.Command{
		Name:        name,
		Usage:       usage,
		Description: description,
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		return helpWasCalled, fmt.Errorf("cmd.Run: %w", err)
	}

	return helpWasCalled, nil
}

func parseFlags(c any, opts parseOptions) ([]cli.Flag, error) {
	if c == nil {
		return nil, errors.New("config must not be nil")
	}

	v := reflect.ValueOf(c)

	if v.Kind() != reflect.Ptr {
		return nil, errors.New("config must be pointer")
	}

	v = v.Elem()

	if v.Kind() != reflect.Struct {
		return nil, errors.New("config must be struct")
	}

	t := reflect.TypeOf(c).Elem()

	flags := make([]cli.Flag, 0, v.NumField())

	for i := range v.NumField() {
		res, err := parseField(t.Field(i), v.Field(i), opts)
		if err != nil {
			return nil, err
		}

		flags = append(flags, res...)
	}

	return flags, nil
}

type flagOptions[T any] struct {
	Value T
	Dest  *T
	flagOptionsCommon
}

type flagOptionsCommon struct {
	Name       string
	Category   string
	HasValue   bool
	Env        string
	DisableEnv bool
	Usage      string
	Required   bool
	Hidden     bool
}

// nolint: gocyclo, cyclop
func parseField(
	t reflect.StructField,
	v reflect.Value,
	opts parseOptions,
) ([]cli.Flag, error) {
	var flagPrefix, envPrefix string

	if v, ok := t.Tag.Lookup(tagNameFlagPrefix); ok {
		opts.FlagPrefix = v
	}

	if v, ok := t.Tag.Lookup(tagNameEnvPrefix); ok {
		opts.EnvPrefix = v
	}

	if opts.FlagPrefix != "" {
		flagPrefix = opts.FlagPrefix + "-"
	}

	if opts.EnvPrefix != "" {
		envPrefix = opts.EnvPrefix + "_"
	}

	argName, ok := t.Tag.Lookup(tagNameFlag)
	switch {
	case !ok:
		argName = flagPrefix + toKebabCase(t.Name)
	case argName == "-":
		argName = ""
	default:
		argName = flagPrefix + argName
	}

	disableEnv := opts.EnvIsDisabled

	var envName string

	if !disableEnv {
		envName, ok = t.Tag.Lookup(tagNameEnv)
		if !ok {
			envName = envPrefix + toScreamingSnakeCase(t.Name)
		} else {
			if envName == "-" {
				disableEnv = true
			} else {
				envName = envPrefix + envName
			}
		}
	}

	category, ok := t.Tag.Lookup(tagNameCategory)
	switch {
	case ok && v.Kind() != reflect.Struct:
		return nil, fmt.Errorf("category tag is allowed only for structures")
	case !ok && v.Kind() == reflect.Struct:
		category = t.Name
	case !ok && v.Kind() != reflect.Struct:
		category = opts.Category
	}

	if !v.CanSet() {
		return nil, fmt.Errorf("private field: %s", t.Name)
	}

	var defaultValue string

	var hasDefaultValue bool
	if !opts.AlreadyHasDefaultValues {
		defaultValue, hasDefaultValue = t.Tag.Lookup(tagNameDefault)
	}

	usage, _ := t.Tag.Lookup(tagNameUsage)

	var (
		cliRequired bool
		cliOptional bool
		cliHidden   bool
	)

	cliOptionsStr, _ := t.Tag.Lookup(tagNameCLI)
	if cliOptionsStr == "-" {
		return nil, nil
	}

	if cliOptionsStr != "" {
		cliOptions := strings.Split(cliOptionsStr, ",")
		cliRequired = slices.Contains(cliOptions, "required")
		cliOptional = slices.Contains(cliOptions, "optional")
		cliHidden = slices.Contains(cliOptions, "hidden")
	}

	if !cliOptional {
		cliRequired = cliRequired || opts.RequiredByDefault
	}

	if cliHidden && cliRequired {
		return nil, fmt.Errorf("flag %v: must not be hidden and required at the same time, add \"optional\" to cli tag", t.Name)
	}

	configValueIsZero := cliRequired && v.IsZero() && v.Kind() != reflect.Bool && opts.AlreadyHasDefaultValues

	foc := flagOptionsCommon{
		Name:       argName,
		Category:   category,
		HasValue:   false,
		Env:        envName,
		DisableEnv: disableEnv,
		Usage:      usage,
		Required:   cliRequired,
		Hidden:     cliHidden,
	}

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	iface := v.Addr().Interface()
	addr := v.Addr()

	// when T1 is declared as "type T1 T2", convert to T2 so the cast below works
	switch v.Kind() {
	case reflect.Struct:
		envPrefixFromTag, hasEnvPrefixFromTag := t.Tag.Lookup(tagNameEnv)
		if hasEnvPrefixFromTag {
			envPrefix += envPrefixFromTag
		} else {
			envPrefix += toScreamingSnakeCase(t.Name)
		}

		flagPrefixFromTag, hasFlagPrefixFromTag := t.Tag.Lookup(tagNameFlag)
		if hasFlagPrefixFromTag {
			flagPrefix += flagPrefixFromTag
		} else {
			flagPrefix += toKebabCase(t.Name)
		}

		newOpts := parseOptions{
			Parent:                  &opts,
			Category:                category,
			EnvPrefix:               envPrefix,
			EnvIsDisabled:           opts.EnvIsDisabled || envPrefixFromTag == "-",
			FlagPrefix:              flagPrefix,
			RequiredByDefault:       cliRequired,
			AlreadyHasDefaultValues: opts.AlreadyHasDefaultValues,
		}

		return parseFlags(iface, newOpts)

	case reflect.TypeOf(time.Duration(0)).Kind():
		dur := time.Duration(0)
		iface := addr.Convert(reflect.TypeOf(&dur)).Interface()

		dst, ok := iface.(*time.Duration)
		if !ok {
			return nil, fmt.Errorf("failed to cast *time.Duration: %s", t.Name)
		}

		fo := flagOptions[time.Duration]{
			flagOptionsCommon: foc,
			Dest:              dst,
		}

		if opts.AlreadyHasDefaultValues && !configValueIsZero {
			fo.HasValue = true
			fo.Value = *dst
		} else if hasDefaultValue {
			v, err := time.ParseDuration(defaultValue)
			if err != nil {
				return nil, fmt.Errorf("invalid duration format for %s: %w", t.Name, err)
			}

			fo.HasValue = true
			fo.Value = v
		}

		if fo.HasValue {
			fo.Required = false
		}

		return []cli.Flag{durationFlag(fo)}, nil

	case reflect.String:
		var str string

		iface := addr.Convert(reflect.TypeOf(&str)).Interface()

		dst, ok := iface.(*string)
		if !ok {
			return nil, fmt.Errorf("failed to cast *string: %s", t.Name)
		}

		fo := flagOptions[string]{
			flagOptionsCommon: foc,
			Dest:              dst,
		}

		if opts.AlreadyHasDefaultValues && !configValueIsZero {
			fo.HasValue = true
			fo.Value = *dst
		} else if hasDefaultValue {
			fo.HasValue = true
			fo.Value = defaultValue
		}

		if fo.HasValue {
			fo.Required = false
		}

		return []cli.Flag{stringFlag(fo)}, nil

	case reflect.Int:
		var tInt int

		iface := addr.Convert(reflect.TypeOf(&tInt)).Interface()

		dst, ok := iface.(*int)
		if !ok {
			return nil, fmt.Errorf("failed to cast *int: %s", t.Name)
		}

		fo := flagOptions[int]{
			flagOptionsCommon: foc,
			Dest:              dst,
		}

		if opts.AlreadyHasDefaultValues && !configValueIsZero {
			fo.HasValue = true
			fo.Value = *dst
		} else if hasDefaultValue {
			v, err := strconv.Atoi(defaultValue)
			if err != nil {
				return nil, err
			}

			fo.HasValue = true
			fo.Value = v
		}

		if fo.HasValue {
			fo.Required = false
		}

		return []cli.Flag{intFlag(fo)}, nil

	case reflect.Bool:
		var tBool bool

		iface := addr.Convert(reflect.TypeOf(&tBool)).Interface()

		dst, ok := iface.(*bool)
		if !ok {
			return nil, fmt.Errorf("failed to cast *bool: %s", t.Name)
		}

		fo := flagOptions[bool]{
			flagOptionsCommon: foc,
			Dest:              dst,
		}

		if opts.AlreadyHasDefaultValues && !configValueIsZero {
			fo.HasValue = true
			fo.Value = *dst
		} else if hasDefaultValue {
			v, err := strconv.ParseBool(defaultValue)
			if err != nil {
				return nil, err
			}

			fo.HasValue = true
			fo.Value = v
		}

		if fo.HasValue {
			fo.Required = false
		}

		return []cli.Flag{boolFlag(fo)}, nil

	default:
		return nil, fmt.Errorf("type %v is unsupported", v)
	}
}

func stringFlag(opts flagOptions[string]) *cli.StringFlag {
	flag := &cli.StringFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func boolFlag(opts flagOptions[bool]) *cli.BoolFlag {
	flag := &cli.BoolFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Hidden: opts.Hidden}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func intFlag(opts flagOptions[int]) *cli.IntFlag {
	flag := &cli.IntFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func durationFlag(opts flagOptions[time.Duration]) *cli.DurationFlag {
	flag := &cli.DurationFlag{Name: opts.Name, Category: opts.Category, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden}
	if opts.HasValue {
		flag.Value = opts.Value
	}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")

	return strings.ToLower(snake)
}

func toKebabCase(str string) string {
	return strings.ReplaceAll(toSnakeCase(str), "_", "-")
}

func toScreamingSnakeCase(str string) string {
	return strings.ToUpper(toSnakeCase(str))
}
