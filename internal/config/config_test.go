package config

import "testing"

func TestParseCredentialsDefaults(t *testing.T) {
	creds := parseCredentials("")
	if len(creds) != 3 {
		t.Fatalf("expected 3 demo accounts, got %d", len(creds))
	}
	if creds["admin"] != "admin123" || creds["Ramesh"] != "rameshji" || creds["test"] != "test123" {
		t.Fatalf("unexpected demo accounts: %v", creds)
	}
}

func TestParseCredentialsPairs(t *testing.T) {
	creds := parseCredentials("alice:$2b$10$abcdef, bob:plainpass,broken")
	if len(creds) != 2 {
		t.Fatalf("expected 2 accounts, got %d: %v", len(creds), creds)
	}
	if creds["alice"] != "$2b$10$abcdef" || creds["bob"] != "plainpass" {
		t.Fatalf("unexpected accounts: %v", creds)
	}
}

func TestParseCSV(t *testing.T) {
	items := parseCSV(" a, ,b ,")
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Fatalf("unexpected items: %v", items)
	}
	if parseCSV("") != nil {
		t.Fatal("empty input should return nil")
	}
}
