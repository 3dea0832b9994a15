package scsdk

import "testing"

func TestSignPinnedDigest(t *testing.T) {
	tests := []struct {
		name       string
		parameters map[string]string
		secret     string
		expected   string
	}{
		{
			name:       "basic",
			parameters: map[string]string{"Action": "GetOrders", "UserID": "u1"},
			secret:     "s3cr3t",
			expected:   "38a7cf30dfcff602d4dbc6da8da82418d2581e3f4ce5e4561c765bc04daba7b9",
		},
		{
			name:       "spaces are percent encoded",
			parameters: map[string]string{"Action": "Feed List", "UserID": "u 1"},
			secret:     "k",
			expected:   "7828c58f228685c1f1d5abfa939e38dbcc3e5c6ac4d563f3b4d13d9c959f5eef",
		},
		{
			name: "full parameter set",
			parameters: map[string]string{
				"UserID":       "seller@example.com",
				"Version":      "1.0",
				"Action":       "GetOrders",
				"Format":       "json",
				"Timestamp":    "2024-05-01T12:30:45+07:00",
				"CreatedAfter": "2024-04-01T00:00:00+07:00",
			},
			secret:   "api-secret",
			expected: "957f468de97b88f6ee4e58f465895b61d71cf1c122dbca410fa79da9d55ab6be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sign(tt.parameters, tt.secret); got != tt.expected {
				t.Errorf("Expected digest %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSignDeterministic(t *testing.T) {
	parameters := map[string]string{"Action": "GetProducts", "UserID": "u1", "Format": "xml"}

	first := Sign(parameters, "secret")
	for i := 0; i < 10; i++ {
		if got := Sign(parameters, "secret"); got != first {
			t.Fatalf("Expected stable digest %s, got %s", first, got)
		}
	}
}

func TestSignOrderIndependent(t *testing.T) {
	a := map[string]string{}
	a["Action"] = "GetOrders"
	a["UserID"] = "u1"
	a["Version"] = "1.0"

	b := map[string]string{}
	b["Version"] = "1.0"
	b["UserID"] = "u1"
	b["Action"] = "GetOrders"

	if Sign(a, "k") != Sign(b, "k") {
		t.Error("Expected digest to be independent of insertion order")
	}
}

func TestSignValueChangesDigest(t *testing.T) {
	base := map[string]string{"Action": "GetOrders", "UserID": "u1"}
	changed := map[string]string{"Action": "GetOrders", "UserID": "u2"}

	if Sign(base, "k") == Sign(changed, "k") {
		t.Error("Expected different digests for different parameter values")
	}
}

func TestCanonicalQuery(t *testing.T) {
	got := CanonicalQuery(map[string]string{
		"B Key": "has space",
		"A":     "1+1",
	})
	expected := "A=1%2B1&B%20Key=has%20space"

	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
