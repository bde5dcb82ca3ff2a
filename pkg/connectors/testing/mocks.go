package testing

// MockSecretsConnector is a reusable mock for any connector that implements
// secret retrieval methods.
//
// Usage example:
//
//	mock := &testing.MockSecretsConnector{
//		GetSecretsFunc: func(keys []string) (map[string]string, []error) {
//			return map[string]string{"key1": "value1"}, nil
//		},
//	}
type MockSecretsConnector struct {
	GetSecretsFunc func(keys []string) (map[string]string, []error)
	GetSecretFunc  func(secretName string) (string, error)
}

// GetSecrets retrieves multiple secrets by their keys.
func (m *MockSecretsConnector) GetSecrets(keys []string) (map[string]string, []error) {
	if m.GetSecretsFunc != nil {
		return m.GetSecretsFunc(keys)
	}
	return map[string]string{}, nil
}

// GetSecret retrieves a single secret by name.
func (m *MockSecretsConnector) GetSecret(secretName string) (string, error) {
	if m.GetSecretFunc != nil {
		return m.GetSecretFunc(secretName)
	}
	return "", nil
}
