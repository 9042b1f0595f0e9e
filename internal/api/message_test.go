package api

import "testing"

func TestExtractMessage(t *testing.T) {
	const fallback = "something went wrong"

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "field error",
			body: `{"password": ["This field is required."]}`,
			want: "Password: This field is required.",
		},
		{
			name: "field priority over detail",
			body: `{"detail": "generic", "username": ["A user with that username already exists."]}`,
			want: "Username: A user with that username already exists.",
		},
		{
			name: "username before password",
			body: `{"password": ["too short"], "username": ["taken"]}`,
			want: "Username: taken",
		},
		{
			name: "field as plain string",
			body: `{"email": "Enter a valid email address."}`,
			want: "Email: Enter a valid email address.",
		},
		{
			name: "detail",
			body: `{"detail": "No active account found with the given credentials"}`,
			want: "No active account found with the given credentials",
		},
		{
			name: "non field errors",
			body: `{"non_field_errors": ["Unable to log in with provided credentials."]}`,
			want: "Unable to log in with provided credentials.",
		},
		{
			name: "empty object",
			body: `{}`,
			want: fallback,
		},
		{
			name: "malformed json",
			body: `<html>502 Bad Gateway</html>`,
			want: fallback,
		},
		{
			name: "empty body",
			body: ``,
			want: fallback,
		},
		{
			name: "field list with non strings",
			body: `{"role": [42, "pick student or tutor"]}`,
			want: "Role: pick student or tutor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMessage([]byte(tt.body), fallback); got != tt.want {
				t.Fatalf("ExtractMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
