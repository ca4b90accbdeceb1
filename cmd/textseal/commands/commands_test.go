package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textseal/internal/app"
	"textseal/internal/crypto"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfg := app.DefaultConfig()
	cfg.Stdin = strings.NewReader(stdin)
	cfg.Stderr = &bytes.Buffer{}

	root := newRootCmd(cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--env-file="}, args...))

	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSignVerify_Blake3(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "blake3.key")
	msgFile := writeFile(t, dir, "msg.txt", "hello world\n")

	_, err := run(t, "", "text", "generate-key", "--format", "blake3", "-o", keyFile)
	require.NoError(t, err)

	sig, err := run(t, "", "text", "sign", "-i", msgFile, "-k", keyFile)
	require.NoError(t, err)
	sig = strings.TrimSpace(sig)
	assert.Len(t, sig, 43)

	out, err := run(t, "", "text", "verify", "-i", msgFile, "-k", keyFile, "-s", sig)
	require.NoError(t, err)
	assert.Contains(t, out, "Signature verified")

	// The message comes from stdin here and is trimmed the same way.
	_, err = run(t, "hello world", "text", "verify", "-k", keyFile, "-s", sig)
	require.NoError(t, err)

	_, err = run(t, "hello world!", "text", "verify", "-k", keyFile, "-s", sig)
	assert.ErrorIs(t, err, errSignatureMismatch)
}

func TestSignVerify_Ed25519(t *testing.T) {
	dir := t.TempDir()
	seedFile := filepath.Join(dir, "ed25519.key")
	msgFile := writeFile(t, dir, "msg.txt", "signed by seed")
	sigFile := filepath.Join(dir, "msg.sig")

	out, err := run(t, "", "text", "generate-key", "--format", "ed25519", "-o", seedFile)
	require.NoError(t, err)
	assert.Contains(t, out, seedFile+".pub")

	pub, err := os.ReadFile(seedFile + ".pub")
	require.NoError(t, err)
	assert.Len(t, pub, crypto.Ed25519PublicKeySize)

	_, err = run(t, "", "text", "sign", "--format", "ed25519", "-i", msgFile, "-k", seedFile, "-o", sigFile)
	require.NoError(t, err)

	out, err = run(t, "", "text", "verify", "--format", "ed25519", "-i", msgFile, "-k", seedFile+".pub", "-s", sigFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Signature verified")

	// The seed is not the verifying key.
	_, err = run(t, "", "text", "verify", "--format", "ed25519", "-i", msgFile, "-k", seedFile, "-s", sigFile)
	assert.ErrorIs(t, err, errSignatureMismatch)
}

func TestSign_BadKeyLength(t *testing.T) {
	dir := t.TempDir()
	keyFile := writeFile(t, dir, "short.key", strings.Repeat("k", 31))

	_, err := run(t, "msg", "text", "sign", "-k", keyFile)
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
}

func TestSign_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	keyFile := writeFile(t, dir, "k", strings.Repeat("k", 32))

	_, err := run(t, "msg", "text", "sign", "-k", keyFile, "--format", "md5")
	assert.Error(t, err)
}

func TestInputValidation(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "", "text", "sign", "-i", filepath.Join(dir, "missing"), "-k", "-")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "", "text", "sign", "-i", "-", "-k", "-")
	assert.ErrorIs(t, err, errBothStdin)

	_, err = run(t, "", "text", "sign", "-i", dir, "-k", "-")
	assert.Error(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "chacha.key")
	encFile := filepath.Join(dir, "encrypted.txt")
	decFile := filepath.Join(dir, "decrypted.txt")

	_, err := run(t, "", "text", "generate-encrypt-key", "-o", keyFile)
	require.NoError(t, err)

	keyText, err := os.ReadFile(keyFile)
	require.NoError(t, err)
	assert.Len(t, keyText, 43)

	_, err = run(t, "plaintext message\n", "text", "encrypt", "-k", keyFile, "-o", encFile)
	require.NoError(t, err)

	out, err := run(t, "", "text", "decrypt", "-i", encFile, "-k", keyFile, "-o", decFile, "-p")
	require.NoError(t, err)
	assert.Equal(t, "plaintext message\n", out, "encryption does not trim")

	dec, err := os.ReadFile(decFile)
	require.NoError(t, err)
	assert.Equal(t, "plaintext message\n", string(dec))

	otherKey := filepath.Join(dir, "other.key")
	_, err = run(t, "", "text", "generate-encrypt-key", "-o", otherKey)
	require.NoError(t, err)

	_, err = run(t, "", "text", "decrypt", "-i", encFile, "-k", otherKey)
	assert.Equal(t, crypto.ErrDecryptionFailed, err)
}

func TestEncrypt_Stdout(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "chacha.key")
	_, err := run(t, "", "text", "generate-encrypt-key", "-o", keyFile)
	require.NoError(t, err)

	enc, err := run(t, "abc", "text", "encrypt", "-k", keyFile)
	require.NoError(t, err)

	payload, err := crypto.FromBase64URL(strings.TrimSpace(enc))
	require.NoError(t, err)
	assert.Len(t, payload, crypto.NonceSize+3+crypto.TagSize)

	out, err := run(t, enc, "text", "decrypt", "-k", keyFile)
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}

func TestGenerateKey_KeyDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(app.EnvKeyDir, "")

	out, err := run(t, "", "text", "generate-key", "--key-dir", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "-blake3.key"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, raw, crypto.KeySize)

	_, err = run(t, "", "text", "generate-encrypt-key")
	assert.Error(t, err)
}

func TestGenerateKey_KeyDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(app.EnvKeyDir, dir)

	out, err := run(t, "", "text", "generate-encrypt-key")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(strings.TrimSpace(out)))
}

func TestEncrypt_AsymmetricFormat(t *testing.T) {
	dir := t.TempDir()
	keyFile := writeFile(t, dir, "k", crypto.ToBase64URL(make([]byte, 32)))

	_, err := run(t, "x", "text", "encrypt", "-k", keyFile, "--format", "x25519")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not implemented")
}

func TestBase64(t *testing.T) {
	out, err := run(t, "hello?>", "base64", "encode")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8/Pg==\n", out)

	out, err = run(t, "hello?>", "base64", "encode", "--format", "urlsafe")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8_Pg\n", out)

	out, err = run(t, "aGVsbG8_Pg\n", "base64", "decode", "--format", "urlsafe")
	require.NoError(t, err)
	assert.Equal(t, "hello?>", out)

	_, err = run(t, "x", "base64", "encode", "--format", "hex")
	assert.Error(t, err)
}

func TestGenpass(t *testing.T) {
	out, err := run(t, "", "genpass", "-l", "24", "--no-symbol")
	require.NoError(t, err)

	pw := strings.TrimSpace(out)
	assert.Len(t, pw, 24)
	assert.False(t, strings.ContainsAny(pw, "!@#$%^&*()-_=+"))

	_, err = run(t, "", "genpass", "--no-upper", "--no-lower", "--no-number", "--no-symbol")
	assert.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	cfg := app.DefaultConfig()
	var logs bytes.Buffer
	cfg.Stdin = strings.NewReader("")
	cfg.Stderr = &logs

	root := newRootCmd(cfg)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--env-file=", "--debug", "genpass"})
	require.NoError(t, root.Execute())

	assert.Contains(t, logs.String(), "generated password")
}
