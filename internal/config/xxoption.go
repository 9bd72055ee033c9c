package config

import (
	"strings"

	"vmargs/internal/argparse"
	"vmargs/internal/flags"
	"vmargs/internal/options"
)

// parseXXOption normalizes one -XX: token: split name from value, resolve
// aliases and lifecycle state, parse the value by the flag's declared type,
// and record the result under the precedence rules.
func (c *Context) parseXXOption(tok options.Token, fs options.FileReader) error {
	raw := tok.Raw
	body := raw[len("-XX:"):]

	var name, value string
	var boolValue, isBool bool
	switch {
	case strings.HasPrefix(body, "+"):
		name, boolValue, isBool = body[1:], true, true
	case strings.HasPrefix(body, "-"):
		name, boolValue, isBool = body[1:], false, true
	case strings.Contains(body, "="):
		name, value, _ = strings.Cut(body, "=")
	default:
		return flags.Errorf(flags.MalformedToken, raw, "expected +name, -name or name=value")
	}
	if name == "" {
		return flags.Errorf(flags.MalformedToken, raw, "missing flag name")
	}

	canonical, warns, err := flags.CheckLifecycle(name, raw)
	c.warnings = append(c.warnings, warns...)
	if err != nil {
		return err
	}
	if canonical == "" {
		// Obsolete: accepted, warned about, no effect.
		return nil
	}

	def := flags.Lookup(canonical)
	if def == nil {
		return c.unknownOption(raw)
	}

	switch def.Type {
	case flags.Bool:
		if !isBool {
			return flags.Errorf(flags.MalformedToken, raw, "boolean flag requires +%s or -%s", canonical, canonical)
		}
		return c.Flags.Set(canonical, boolValue, tok.Origin)

	case flags.Uintx:
		if isBool {
			return flags.Errorf(flags.MalformedToken, raw, "flag %s requires %s=<value>", canonical, canonical)
		}
		n, ok := argparse.ParseUintx(value, def.Min)
		if !ok {
			return flags.Errorf(flags.RangeError, raw, "value %q is not an unsigned integer of at least %d", value, def.Min)
		}
		return c.Flags.Set(canonical, n, tok.Origin)

	case flags.MemorySize:
		if isBool {
			return flags.Errorf(flags.MalformedToken, raw, "flag %s requires %s=<size>", canonical, canonical)
		}
		size, status := argparse.ParseMemorySize(value, def.Min)
		if status != argparse.InRange {
			return rangeError(raw, status)
		}
		return c.Flags.Set(canonical, size, tok.Origin)

	default: // flags.String
		if isBool {
			return flags.Errorf(flags.MalformedToken, raw, "flag %s requires %s=<value>", canonical, canonical)
		}
		if err := c.Flags.Set(canonical, value, tok.Origin); err != nil {
			return err
		}
		return c.applyStringFlag(canonical, value, raw, fs)
	}
}

// applyStringFlag handles the string flags with side effects beyond the
// flag set itself.
func (c *Context) applyStringFlag(canonical, value, raw string, fs options.FileReader) error {
	switch canonical {
	case "CompileOnly":
		if err := c.compileOnly.AddPatterns(value); err != nil {
			return flags.Errorf(flags.MalformedToken, raw, "%v", err)
		}
		c.checkCompileOnly = !c.compileOnly.Empty()
	case "CompileOnlyFile":
		data, err := fs.ReadFile(value)
		if err != nil {
			return flags.Errorf(flags.MalformedToken, raw, "cannot read compile filter file: %v", err)
		}
		if err := c.compileOnly.AddPatterns(string(data)); err != nil {
			return flags.Errorf(flags.MalformedToken, raw, "%v", err)
		}
		c.checkCompileOnly = !c.compileOnly.Empty()
	}
	return nil
}
