package sshserver

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/fieldscan/logging"
)

func (s *Server) authenticate(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := gossh.FingerprintSHA256(key)
	if !isKeyAuthorized(key, s.authorizedKeys) {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
		return false
	}
	logging.Logger.Info("SSH key authenticated",
		"user", ctx.User(),
		"fingerprint", fingerprint)
	return true
}

// isKeyAuthorized reports whether key is listed in the authorized_keys file
func isKeyAuthorized(key ssh.PublicKey, path string) bool {
	file, err := os.Open(path)
	if err != nil {
		logging.Logger.Warn("Failed to open authorized_keys", "error", err, "path", path)
		return false
	}
	defer file.Close()

	lines := bufio.NewScanner(file)
	for lines.Scan() {
		line := bytes.TrimSpace(lines.Bytes())
		if len(line) == 0 || strings.HasPrefix(string(line), "#") {
			continue
		}
		authorized, _, _, _, err := gossh.ParseAuthorizedKey(line)
		if err != nil {
			continue
		}
		if ssh.KeysEqual(key, authorized) {
			return true
		}
	}
	return false
}
