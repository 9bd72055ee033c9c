package config

import (
	"strings"

	"vmargs/internal/argparse"
	"vmargs/internal/flags"
	"vmargs/internal/options"
)

// Minimum accepted values for the shorthand size options.
const (
	minHeapArg  = uint64(1) << 20 // -Xms, -Xmx, -Xmn
	minStackArg = uint64(64) << 10
)

// processToken normalizes one token from the merged stream, recording its
// effect on the flag set, property list, agent registry or patch table.
func (c *Context) processToken(tok options.Token, fs options.FileReader) error {
	raw := tok.Raw
	switch {
	case strings.HasPrefix(raw, "-XX:"):
		c.vmFlags = append(c.vmFlags, raw)
		return c.parseXXOption(tok, fs)

	case strings.HasPrefix(raw, "-D"):
		c.vmArgs = append(c.vmArgs, raw)
		return c.addProperty(raw)

	case strings.HasPrefix(raw, "-Xms"):
		c.vmArgs = append(c.vmArgs, raw)
		size, status := argparse.ParseMemorySize(raw[len("-Xms"):], minHeapArg)
		if status != argparse.InRange {
			return rangeError(raw, status)
		}
		// -Xms fixes both the minimum and the starting heap size.
		if err := c.Flags.Set("MinHeapSize", size, tok.Origin); err != nil {
			return err
		}
		return c.Flags.Set("InitialHeapSize", size, tok.Origin)

	case strings.HasPrefix(raw, "-Xmx"):
		c.vmArgs = append(c.vmArgs, raw)
		size, status := argparse.ParseMemorySize(raw[len("-Xmx"):], minHeapArg)
		if status != argparse.InRange {
			return rangeError(raw, status)
		}
		return c.Flags.Set("MaxHeapSize", size, tok.Origin)

	case strings.HasPrefix(raw, "-Xmn"):
		c.vmArgs = append(c.vmArgs, raw)
		size, status := argparse.ParseMemorySize(raw[len("-Xmn"):], minHeapArg)
		if status != argparse.InRange {
			return rangeError(raw, status)
		}
		// The shorthand pins the young generation at a fixed size.
		if err := c.Flags.Set("NewSize", size, tok.Origin); err != nil {
			return err
		}
		return c.Flags.Set("MaxNewSize", size, tok.Origin)

	case strings.HasPrefix(raw, "-Xss"):
		c.vmArgs = append(c.vmArgs, raw)
		size, status := argparse.ParseMemorySize(raw[len("-Xss"):], minStackArg)
		if status != argparse.InRange {
			return rangeError(raw, status)
		}
		// ThreadStackSize is kept in KiB, rounded up. Shift before adding
		// the round-up so near-limit byte counts cannot wrap.
		kib := size >> 10
		if size&(1<<10-1) != 0 {
			kib++
		}
		return c.Flags.Set("ThreadStackSize", kib, tok.Origin)

	case raw == "-Xint":
		c.vmArgs = append(c.vmArgs, raw)
		c.Mode = ModeInt
		return nil
	case raw == "-Xmixed":
		c.vmArgs = append(c.vmArgs, raw)
		c.Mode = ModeMixed
		return nil
	case raw == "-Xcomp":
		c.vmArgs = append(c.vmArgs, raw)
		c.Mode = ModeComp
		return nil

	case strings.HasPrefix(raw, "-Xbootclasspath/a:"):
		c.vmArgs = append(c.vmArgs, raw)
		path := raw[len("-Xbootclasspath/a:"):]
		if path == "" {
			return flags.Errorf(flags.MalformedToken, raw, "missing path")
		}
		c.AppendBootClassPath(path)
		return nil

	case strings.HasPrefix(raw, "-agentlib:"):
		c.vmArgs = append(c.vmArgs, raw)
		return c.addAgent(raw, raw[len("-agentlib:"):], false)
	case strings.HasPrefix(raw, "-agentpath:"):
		c.vmArgs = append(c.vmArgs, raw)
		return c.addAgent(raw, raw[len("-agentpath:"):], true)

	case strings.HasPrefix(raw, "-Xrun:"):
		c.vmArgs = append(c.vmArgs, raw)
		spec := raw[len("-Xrun:"):]
		name, opts, _ := strings.Cut(spec, ":")
		if name == "" {
			return flags.Errorf(flags.MalformedToken, raw, "missing library name")
		}
		c.Agents.AddInitLibrary(name, opts)
		return nil

	case strings.HasPrefix(raw, "--patch-module="):
		c.vmArgs = append(c.vmArgs, raw)
		return c.addPatchModule(raw, raw[len("--patch-module="):])

	default:
		return c.unknownOption(raw)
	}
}

// addProperty handles -Dkey=value. A missing '=' defines the key with an
// empty value.
func (c *Context) addProperty(raw string) error {
	spec := raw[len("-D"):]
	key, value, _ := strings.Cut(spec, "=")
	if key == "" {
		return flags.Errorf(flags.MalformedToken, raw, "missing property key")
	}
	c.Properties.UniqueAdd(key, value, false)
	return nil
}

// addAgent handles -agentlib and -agentpath specs of the form
// name[=options].
func (c *Context) addAgent(raw, spec string, absolutePath bool) error {
	name, opts, _ := strings.Cut(spec, "=")
	if name == "" {
		return flags.Errorf(flags.MalformedToken, raw, "missing agent name")
	}
	c.Agents.AddInitAgent(name, opts, absolutePath)
	return nil
}

// addPatchModule handles module=path[<sep>path...] pairs. Duplicate module
// names accumulate onto the same entry.
func (c *Context) addPatchModule(raw, spec string) error {
	module, paths, ok := strings.Cut(spec, "=")
	if !ok || module == "" || paths == "" {
		return flags.Errorf(flags.MalformedToken, raw, "expected module=path")
	}
	c.PatchTable.Add(module, paths)
	return nil
}

// unknownOption applies the ignore-unrecognized mode: a warning when
// active, fatal otherwise.
func (c *Context) unknownOption(raw string) error {
	if c.ignoreUnrecognized {
		c.Warn(flags.UnknownOption, raw, "ignoring unrecognized VM option")
		return nil
	}
	return flags.Errorf(flags.UnknownOption, raw, "unrecognized VM option")
}

// rangeError converts a size-parse status into the classified fatal error,
// naming the offending token.
func rangeError(token string, status argparse.RangeStatus) error {
	switch status {
	case argparse.TooSmall:
		return flags.Errorf(flags.RangeError, token, "size is below the required minimum")
	case argparse.TooBig:
		return flags.Errorf(flags.RangeError, token, "size overflows the 64-bit range")
	default:
		return flags.Errorf(flags.RangeError, token, "not a readable size")
	}
}
