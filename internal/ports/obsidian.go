package ports

// ObsidianOpener defines the interface for opening notes in Obsidian
type ObsidianOpener interface {
	// OpenFile opens the specified note in Obsidian using the obsidian:// URI scheme.
	// The filePath should be an absolute path to a file within the vault.
	OpenFile(filePath string) error
}
