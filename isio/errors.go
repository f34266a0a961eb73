package isio

import "errors"

// ErrParse is wrapped by every error the rule-line grammar or the ground-set
// line produces (spec §7's ParseError kind). Callers can test for it with
// errors.Is.
var ErrParse = errors.New("isio: parse error")

// ErrIO is wrapped by failures opening or creating the file in Load/Save and
// by write failures in Write (spec §7's IOError kind). Read failures while
// Parse scans its input are wrapped with ErrParse instead.
var ErrIO = errors.New("isio: io error")

// ErrUnknownExtension is returned by the registry when asked to read or
// write a path whose extension has no registered factory.
var ErrUnknownExtension = errors.New("isio: no factory registered for extension")
