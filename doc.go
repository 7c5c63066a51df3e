// Package sealbox implements a hybrid encryption protocol for exchanging
// small JSON payloads between a browser-side client and a server.
//
// Payloads are encrypted with AES-256-GCM under a 32-byte session key,
// which travels RSA-OAEP-SHA256-wrapped under the recipient's public key.
// The client caches one session key for up to 15 minutes and re-wraps it
// only when it expires or the peer's public key changes; the server is
// stateless and unwraps the key on every call.
//
// One-shot usage:
//
//	packet, err := sealbox.EncryptHybrid(publicKeyPEM, `{"a":1}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// On the private-key side:
//	server := sealbox.NewServer()
//	plaintext, err := server.DecryptHybrid(packet)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Session usage:
//
//	client := sealbox.NewClient()
//	key, err := client.EnsureSessionKey(publicKeyPEM)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	packet, err := client.EncryptWithSession(`{"a":1}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The server receives the wrapped key alongside the packet.
//	plaintext, err := server.DecryptWithWrapped(key.WrappedKeyB64, packet)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Private keys never leave the server side. The default server
// configuration reads PRIVATE_KEY_PEM from the environment and tolerates
// the escaping damage that PEM strings typically pick up on the way in.
package sealbox
