package utils

import (
	"os"
	"os/exec"
)

func editorPath() string {
	ed := os.Getenv("EDITOR")
	if ed != "" {
		return ed
	}
	// prefer nvim if available
	if p, err := exec.LookPath("nvim"); err == nil {
		return p
	}
	if p, err := exec.LookPath("vi"); err == nil {
		return p
	}
	return "ed"
}

// EditorCommand writes initial to a temp file and returns a command that opens
// it in the user's editor. The caller runs it and then calls ReadEdited.
func EditorCommand(initial string) (*exec.Cmd, string, error) {
	tmp, err := os.CreateTemp("", "valuevault-details-*.md")
	if err != nil {
		return nil, "", err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, "", err
	}

	return exec.Command(editorPath(), tmpName), tmpName, nil
}

func ReadEdited(path string) (string, error) {
	defer os.Remove(path)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
