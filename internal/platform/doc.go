package platform

// Package platform contains OS integration glue: file checks, the user's
// pictures directory, and opening or revealing converted files.
