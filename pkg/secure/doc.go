// Package secure implements the envelope codec that carries an
// authenticated principal through an opaque session store.
//
// A Codec serializes a value to JSON, encrypts it with AES-CBC and encodes
// the result as base64. The session manager stores that envelope under the
// user's session key; the front end may also use it to round-trip form
// payloads. Decode failures are reported as errors wrapping ErrDecodeFailed
// so callers can degrade a corrupted session to "no session" instead of
// failing the request.
//
// Key and IV are loaded from configuration at process start (see Config);
// rotating them invalidates every outstanding envelope, which is the
// expected operational behavior.
package secure
