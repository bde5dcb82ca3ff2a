package resolvers

import (
	"strings"

	"github.com/envloom/envloom/pkg/connectors"
)

const secretRefScheme = "sm://"

// secretsConnector is the slice of the secrets manager connector the
// extractor needs
type secretsConnector interface {
	GetSecrets(keys []string) (map[string]string, []error)
}

// secretRefName reports whether a pair value is a secrets manager
// reference and returns the secret name. Detection tolerates the
// surrounding whitespace that untrimmed extraction leaves on values.
func secretRefName(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, secretRefScheme) {
		return "", false
	}
	return strings.TrimPrefix(trimmed, secretRefScheme), true
}

func prefixRefs(names []string) []string {
	refs := make([]string, len(names))
	for i, name := range names {
		refs[i] = secretRefScheme + name
	}
	return refs
}

// resolveSecretRefs replaces sm://name values with the named secret's
// current value, in place so merge order is unaffected. Distinct names are
// fetched in a single batch. Any fetch failure is fatal to the run, there
// is no partial substitution.
func resolveSecretRefs(pairs []Pair, sourcePath string, connector secretsConnector) error {
	var names []string
	seen := map[string]bool{}
	for _, p := range pairs {
		if name, ok := secretRefName(p.Value); ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}

	if connector == nil {
		smConnector, err := connectors.NewSecretsManagerConnector()
		if err != nil {
			return &SecretResolutionError{Path: sourcePath, Refs: prefixRefs(names), Err: err}
		}
		connector = smConnector
	}

	secrets, errs := connector.GetSecrets(names)
	if len(errs) > 0 {
		var missing []string
		for _, name := range names {
			if _, ok := secrets[name]; !ok {
				missing = append(missing, secretRefScheme+name)
			}
		}
		return &SecretResolutionError{Path: sourcePath, Refs: missing, Err: errs[0]}
	}

	for i := range pairs {
		if name, ok := secretRefName(pairs[i].Value); ok {
			pairs[i].Value = secrets[name]
		}
	}
	return nil
}
