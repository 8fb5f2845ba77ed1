package docx2tex

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
)

// includeGraphicsRE matches the image references pandoc generates, both
//
//	\pandocbounded{\includegraphics[...]{path}}
//	\includegraphics[...]{path}
//
// replacing the whole \pandocbounded wrapper when present.
var includeGraphicsRE = regexp.MustCompile(
	`\\pandocbounded\{\\includegraphics(?:\[[^\]]*\])?\{([^}]+)\}\}` +
		`|\\includegraphics(?:\[[^\]]*\])?\{([^}]+)\}`)

// refPath extracts the image path from a regex match, whichever alternative
// matched.
func refPath(groups []string) string {
	if groups[1] != "" {
		return groups[1]
	}
	return groups[2]
}

// isEquationPreview reports whether an image reference looks like an
// equation preview. Word stores OLE equation previews as Windows metafiles;
// ordinary figures (png, jpeg, ...) are not placeholders and pass through
// substitution untouched.
func isEquationPreview(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".wmf", ".emf":
		return true
	}
	return false
}

// placeholderRefs returns the set of image base names referenced by the
// generated markup.
func placeholderRefs(tex string) map[string]bool {
	refs := make(map[string]bool)
	for _, groups := range includeGraphicsRE.FindAllStringSubmatch(tex, -1) {
		refs[path.Base(refPath(groups))] = true
	}
	return refs
}

// validateBijection checks, at a single point before any substitution, that
// converted fragments and equation placeholders in the markup match one to
// one. Returns ErrOrphanFragment for fragments the markup never references
// and ErrUnresolvedPlaceholder for equation-preview references with no
// fragment.
func validateBijection(tex string, fragments map[string]MathFragment) error {
	refs := placeholderRefs(tex)

	var orphans []string
	for id := range fragments {
		if !refs[id] {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		return fmt.Errorf("%w: %s", ErrOrphanFragment, strings.Join(orphans, ", "))
	}

	var unresolved []string
	for ref := range refs {
		if isEquationPreview(ref) && fragments[ref].PlaceholderID == "" {
			unresolved = append(unresolved, ref)
		}
	}
	if len(unresolved) > 0 {
		sort.Strings(unresolved)
		return fmt.Errorf("%w: %s", ErrUnresolvedPlaceholder, strings.Join(unresolved, ", "))
	}

	return nil
}

// Substitute replaces every placeholder image reference in the generated
// markup with its fragment's wrapped math string. The placeholder/fragment
// bijection is validated before anything is rewritten.
func Substitute(tex string, fragments map[string]MathFragment) (string, int, error) {
	if err := validateBijection(tex, fragments); err != nil {
		return "", 0, err
	}

	replaced := 0
	out := includeGraphicsRE.ReplaceAllStringFunc(tex, func(match string) string {
		groups := includeGraphicsRE.FindStringSubmatch(match)
		frag, ok := fragments[path.Base(refPath(groups))]
		if !ok {
			return match // ordinary figure
		}
		replaced++
		return frag.Wrapped()
	})

	return out, replaced, nil
}
