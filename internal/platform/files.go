package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AndroidCommand  = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
	AndroidImageMIME   = "image/*"
)

// Directory names
const (
	PicturesDirName        = "Pictures"
	AndroidPicturesDir     = "/sdcard/Pictures"
	AndroidDocumentsIntent = "content://com.android.externalstorage.documents/root/primary/Pictures"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrNotRegularFile is returned when a path exists but is not a regular file
var ErrNotRegularFile = errors.New("not a regular file")

// StatRegularFile returns the file info for path if it names an existing regular
// file. Directories and other special files yield ErrNotRegularFile.
func StatRegularFile(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is empty: %w", os.ErrNotExist)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	return info, nil
}

// startCommand launches cmd and reaps it in the background without waiting
// for the launched application to exit
var startCommand = func(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := resolveExisting(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return startCommand(exec.Command(OpenCommand, MacOSSelectFlag, absPath))
	case OSWindows:
		return startCommand(exec.Command(ExplorerCommand, WindowsSelectParam, absPath))
	case OSLinux:
		return openFileInManagerLinux(absPath)
	case OSAndroid:
		return openFileInManagerAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := startCommand(exec.Command(XDGOpenCommand, dir)); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return startCommand(exec.Command(fm, dir))
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// openFileInManagerAndroid opens the pictures folder, then the file's directory
func openFileInManagerAndroid(filePath string) error {
	attempts := [][]string{
		{"start", "-a", "android.intent.action.VIEW", "-d", AndroidDocumentsIntent},
		{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + filepath.Dir(filePath)},
	}
	for _, args := range attempts {
		if err := startCommand(exec.Command(AndroidCommand, args...)); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to open file in manager: no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := resolveExisting(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return startCommand(exec.Command(OpenCommand, absPath))
	case OSWindows:
		return startCommand(exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath))
	case OSLinux:
		return startCommand(exec.Command(XDGOpenCommand, absPath))
	case OSAndroid:
		return startCommand(exec.Command(AndroidCommand, "start", "-a", "android.intent.action.VIEW",
			"-d", "file://"+absPath, "-t", AndroidImageMIME))
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// resolveExisting checks that filePath is an existing file and makes it absolute
func resolveExisting(filePath string) (string, error) {
	if _, err := StatRegularFile(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// GetHomePicturesDir returns the standard Pictures directory for the user
func GetHomePicturesDir() (string, error) {
	isAndroid := runtime.GOOS == OSAndroid ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so

	if isAndroid {
		return AndroidPicturesDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, PicturesDirName), nil
}
