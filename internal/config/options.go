package config

import (
	"strconv"

	"github.com/KirkDiggler/paladin/internal/errors"
)

// MaxOptionValue is the ceiling for integer options
const MaxOptionValue = 5

// Options are the game options shown in the option menu
type Options struct {
	Debug      bool   `toml:"debug" env:"DEBUG"`
	Difficulty int    `toml:"difficulty" env:"DIFFICULTY"`
	Create     bool   `toml:"create" env:"CREATE"`
	Dimensions string `toml:"dimensions" env:"DIMENSIONS"`
	Verbose    bool   `toml:"verbose" env:"VERBOSE"`
}

// Option names one field of Options
type Option int

// Options in display order
const (
	OptionDebug Option = iota
	OptionDifficulty
	OptionCreate
	OptionDimensions
	OptionVerbose
	optionCount
)

// Kind is the value type of an option
type Kind int

// Option kinds
const (
	KindBool Kind = iota
	KindInt
	KindText
)

var optionNames = [optionCount]string{
	OptionDebug:      "debug",
	OptionDifficulty: "difficulty",
	OptionCreate:     "create",
	OptionDimensions: "dimensions",
	OptionVerbose:    "verbose",
}

var optionKinds = [optionCount]Kind{
	OptionDebug:      KindBool,
	OptionDifficulty: KindInt,
	OptionCreate:     KindBool,
	OptionDimensions: KindText,
	OptionVerbose:    KindBool,
}

var optionDescriptions = [optionCount]string{
	OptionDebug:      "Debug run, enables in-game\ndebug options and status\ndisplay",
	OptionDifficulty: "Set game difficulty",
	OptionCreate:     "Start in character creation",
	OptionDimensions: "Terminal dimensions",
	OptionVerbose:    "Verbose logging",
}

// not editable from the option menu
var optionDenylist = [optionCount]bool{
	OptionCreate:     true,
	OptionDimensions: true,
	OptionVerbose:    true,
}

// OptionList returns every option in display order
func OptionList() []Option {
	list := make([]Option, optionCount)
	for i := range list {
		list[i] = Option(i)
	}
	return list
}

// EditableOptions returns the options the option menu may change
func EditableOptions() []Option {
	var list []Option
	for _, o := range OptionList() {
		if o.Editable() {
			list = append(list, o)
		}
	}
	return list
}

// String returns the option name
func (o Option) String() string {
	if !o.valid() {
		return "unknown"
	}
	return optionNames[o]
}

// Kind returns the option's value type
func (o Option) Kind() Kind {
	if !o.valid() {
		return KindText
	}
	return optionKinds[o]
}

// Description returns the side-panel text for the option
func (o Option) Description() string {
	if !o.valid() {
		return ""
	}
	return optionDescriptions[o]
}

// Editable reports whether the option menu lists o
func (o Option) Editable() bool {
	return o.valid() && !optionDenylist[o]
}

func (o Option) valid() bool {
	return o >= 0 && o < optionCount
}

// Value is the current value of one option
type Value struct {
	Kind Kind
	Bool bool
	Int  int
	Text string
}

// String renders the value the way the option menu shows it
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.Itoa(v.Int)
	default:
		return v.Text
	}
}

// Get returns the current value of o
func (opts *Options) Get(o Option) Value {
	v := Value{Kind: o.Kind()}
	switch o {
	case OptionDebug:
		v.Bool = opts.Debug
	case OptionDifficulty:
		v.Int = opts.Difficulty
	case OptionCreate:
		v.Bool = opts.Create
	case OptionDimensions:
		v.Text = opts.Dimensions
	case OptionVerbose:
		v.Bool = opts.Verbose
	}
	return v
}

// SetBool writes a boolean option
func (opts *Options) SetBool(o Option, value bool) error {
	switch o {
	case OptionDebug:
		opts.Debug = value
	case OptionCreate:
		opts.Create = value
	case OptionVerbose:
		opts.Verbose = value
	default:
		return errors.InvalidArgumentf("option %s is not a boolean", o)
	}
	return nil
}

// SetInt writes an integer option
func (opts *Options) SetInt(o Option, value int) error {
	switch o {
	case OptionDifficulty:
		opts.Difficulty = value
	default:
		return errors.InvalidArgumentf("option %s is not an integer", o)
	}
	return nil
}
