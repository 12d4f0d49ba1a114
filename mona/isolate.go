package mona

import (
	"regexp"
	"strings"
)

const lydiaMarker = "Computed automaton:\n"

var monaEndRe = regexp.MustCompile(`\nFormula is (?:valid|unsatisfiable)|A counter-example`)

// IsolateLydia extracts the DFA description from the output of Lydia run with
// the -p flag: the text following the "Computed automaton:" line, up to the
// last log line starting with "[2" (the year of the log timestamps).
func IsolateLydia(raw string) (string, error) {
	start := strings.Index(raw, lydiaMarker)
	if start < 0 {
		return "", &DecodeError{Field: "lydia output", Msg: "cannot find automaton description"}
	}
	rest := raw[start+len(lydiaMarker):]
	end := strings.LastIndex(rest, "\n[2")
	if end < 0 {
		return "", &DecodeError{Field: "lydia output", Msg: "cannot find end of automaton description"}
	}
	return rest[:end], nil
}

// IsolateMONA extracts the DFA description from the output of MONA, as run by
// LTLf2DFA: everything before the last validity verdict or counter-example.
// MONA upper-cases free variables, so the variables equal to the upper-cased
// version of one of the given atoms are renamed back to that atom.
func IsolateMONA(raw string, atoms []string) (string, error) {
	locs := monaEndRe.FindAllStringIndex(raw, -1)
	if locs == nil {
		return "", &DecodeError{Field: "mona output", Msg: "cannot find automaton description"}
	}
	out := raw[:locs[len(locs)-1][0]]
	if len(atoms) == 0 {
		return out, nil
	}
	upper := make(map[string]string, len(atoms))
	for _, a := range atoms {
		upper[strings.ToUpper(a)] = a
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		m := varsRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		vars := strings.Fields(line[m[2]:m[3]])
		for j, v := range vars {
			if a, ok := upper[v]; ok {
				vars[j] = a
			}
		}
		lines[i] = line[:m[2]] + " " + strings.Join(vars, " ")
		break
	}
	return strings.Join(lines, "\n"), nil
}
