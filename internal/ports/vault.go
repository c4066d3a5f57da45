package ports

// VaultRepository defines the filesystem collaborators the link core
// consumes: enumeration, text I/O, existence checks, path containment
// validation, and directory trash moves.
type VaultRepository interface {
	// Root returns the absolute vault root.
	Root() string

	// ValidatePath rejects candidate paths escaping the vault root with
	// an application.PathViolationError.
	ValidatePath(candidate string) error

	// ListMarkdownFiles enumerates every markdown note under the root,
	// vault-relative, excluding the trash directory and hidden dirs.
	ListMarkdownFiles() ([]string, error)

	// Text I/O on vault-relative paths.
	ReadNote(relPath string) (string, error)
	WriteNote(relPath, text string) error
	NoteExists(relPath string) bool

	// File operations the rename and delete features perform before the
	// link core rewrites references.
	MoveNote(oldRel, newRel string) error
	DeleteNote(relPath string) error

	// Trash operations. TrashDir moves a directory under the vault's
	// trash folder and returns the trash-relative destination;
	// RestoreDir moves it back.
	TrashDir(relPath string) (string, error)
	RestoreDir(trashRel, originalRel string) error
}
