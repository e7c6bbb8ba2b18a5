package main

import "testing"

func TestSessionSignerRoundTrip(t *testing.T) {
	signer := newSessionSigner("secret")
	id := "5b0c3f0e-8c1c-4bd4-9b3a-2f6f1b9e8a10"

	got, ok := signer.verify(signer.sign(id))
	if !ok || got != id {
		t.Fatalf("verify(sign(id)) = %q, %v", got, ok)
	}
}

func TestSessionSignerRejectsTampering(t *testing.T) {
	signer := newSessionSigner("secret")
	value := signer.sign("5b0c3f0e-8c1c-4bd4-9b3a-2f6f1b9e8a10")

	for _, bad := range []string{
		"",
		"no-dot",
		value + "00",
		"x" + value,
		value + ".extra",
		newSessionSigner("other").sign("5b0c3f0e-8c1c-4bd4-9b3a-2f6f1b9e8a10"),
	} {
		if _, ok := signer.verify(bad); ok {
			t.Fatalf("verify(%q) accepted a tampered value", bad)
		}
	}
}

func TestSessionSignerWithoutSecretUsesRandomKey(t *testing.T) {
	a, b := newSessionSigner(""), newSessionSigner("")
	if _, ok := b.verify(a.sign("id")); ok {
		t.Fatalf("signers without a secret must not share a key")
	}
}
