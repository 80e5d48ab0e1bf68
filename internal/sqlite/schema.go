// Schema DDL for the gridfig database. The grid and style columns hold the
// JSON form produced by pkg/grid and pkg/types; blob content is stored
// verbatim.
package sqlite

const (
	createFigures = `CREATE TABLE IF NOT EXISTS figures (
    figure_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    grid TEXT NOT NULL,
    style TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createSnapshots = `CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id TEXT PRIMARY KEY,
    figure_id TEXT NOT NULL,
    label TEXT,
    state TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (figure_id) REFERENCES figures(figure_id)
);`

	createBlobs = `CREATE TABLE IF NOT EXISTS blobs (
    blob_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    media_type TEXT NOT NULL,
    content BLOB NOT NULL,
    created_at TEXT NOT NULL
);`

	createSnapshotsFigureIndex = `CREATE INDEX IF NOT EXISTS idx_snapshots_figure
    ON snapshots(figure_id);`
)

// schemaStatements is executed in order on Attach.
var schemaStatements = []string{
	createFigures,
	createSnapshots,
	createBlobs,
	createSnapshotsFigureIndex,
}
