package main

import (
	"strings"
	"testing"
)

func TestKeyScript(t *testing.T) {
	privateKey := strings.Repeat("00", 31) + "01"
	output, err := run(t, "keyscript", "--private-key", privateKey)
	if err != nil {
		t.Fatalf("keyscript: %s", err)
	}

	expected := []string{
		"Public key:\t0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"Pubkey hash:\t751e76e8199196d454941c45d1b3a323f1433bd6",
		"pubkeyhash:\t76a914751e76e8199196d454941c45d1b3a323f1433bd688ac\t1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
		"witness_v0_keyhash:\t0014751e76e8199196d454941c45d1b3a323f1433bd6\tbc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
	}
	for _, line := range expected {
		if !strings.Contains(output, line) {
			t.Errorf("output %q does not contain %q", output, line)
		}
	}
}

func TestKeyScriptInvalidKey(t *testing.T) {
	_, err := run(t, "keyscript", "--private-key", "0102")
	if err == nil {
		t.Fatalf("expected an error for a short private key")
	}
}
