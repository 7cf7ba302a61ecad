package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ProcessImageMove moves an uploaded file from the temp folder to its
// permanent folder and returns the final public URL.
//
// Uploads land in assets/temp first; only when the owning entity (menu item,
// blog post) is saved does the file become permanent under
// assets/image/<targetFolder>. URLs that do not point into assets/temp are
// returned unchanged, they reference files that are already permanent.
func ProcessImageMove(oldFullURL, newFullURL, baseURL, targetFolder string) (string, error) {
	if newFullURL == "" || newFullURL == oldFullURL {
		return oldFullURL, nil
	}
	if !strings.Contains(newFullURL, "assets/temp") {
		return newFullURL, nil
	}

	fileName := filepath.Base(newFullURL)
	tempPath := filepath.Join("assets", "temp", fileName)
	finalDir := filepath.Join("assets", "image", targetFolder)
	finalPath := filepath.Join(finalDir, fileName)

	if _, err := os.Stat(tempPath); err != nil {
		log.Printf("[ERROR] temp file not found: %s", tempPath)
		return oldFullURL, fmt.Errorf("temp file not found on server")
	}

	if err := os.MkdirAll(finalDir, os.ModePerm); err != nil {
		return oldFullURL, fmt.Errorf("failed to create directory: %v", err)
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		log.Printf("[ERROR] failed to move file: %v", err)
		return oldFullURL, fmt.Errorf("failed to move file")
	}

	// Drop the replaced image, unless it is one of the bundled defaults.
	if oldFullURL != "" && !strings.Contains(oldFullURL, "default") {
		oldFileName := filepath.Base(oldFullURL)
		oldFilePath := filepath.Join(finalDir, oldFileName)
		_ = os.Remove(oldFilePath)
	}

	cleanBaseURL := strings.TrimRight(baseURL, "/")
	finalURL := fmt.Sprintf("%s/assets/image/%s/%s", cleanBaseURL, targetFolder, fileName)

	return finalURL, nil
}
