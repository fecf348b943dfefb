package common

const (
	// DefaultSnapshotName is the key the store state is persisted under.
	DefaultSnapshotName = "supernatural-store"

	// SnapshotSchemaVersion is the version written into every snapshot.
	SnapshotSchemaVersion = 1

	// DefaultAdminSecret unlocks the admin listing when no secret is configured.
	DefaultAdminSecret = "88620787"
)
