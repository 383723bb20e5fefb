package schema

type migration struct {
	version int
	name    string
	stmts   []string
}

// Versions are append-only. Migrations 2-6 are additive column changes that
// converge tables created before versioning existed; IF NOT EXISTS keeps
// them harmless against a table that already has the column.
var migrations = []migration{
	{
		version: 1,
		name:    "create movies table",
		stmts: []string{`
			CREATE TABLE IF NOT EXISTS movies (
				id BIGSERIAL PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				genre VARCHAR(100) NOT NULL,
				description TEXT NOT NULL,
				poster_url TEXT NOT NULL,
				rating NUMERIC(3,1) NOT NULL DEFAULT 0,
				certificate VARCHAR(20) DEFAULT 'UA',
				language VARCHAR(100) DEFAULT '',
				votes INT NOT NULL DEFAULT 0,
				likes INT NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`},
	},
	{
		version: 2,
		name:    "add certificate column",
		stmts:   []string{`ALTER TABLE movies ADD COLUMN IF NOT EXISTS certificate VARCHAR(20) DEFAULT 'UA'`},
	},
	{
		version: 3,
		name:    "add language column",
		stmts:   []string{`ALTER TABLE movies ADD COLUMN IF NOT EXISTS language VARCHAR(100) DEFAULT ''`},
	},
	{
		version: 4,
		name:    "add votes column",
		stmts:   []string{`ALTER TABLE movies ADD COLUMN IF NOT EXISTS votes INT NOT NULL DEFAULT 0`},
	},
	{
		version: 5,
		name:    "add likes column",
		stmts:   []string{`ALTER TABLE movies ADD COLUMN IF NOT EXISTS likes INT NOT NULL DEFAULT 0`},
	},
	{
		version: 6,
		name:    "add created_at column",
		stmts:   []string{`ALTER TABLE movies ADD COLUMN IF NOT EXISTS created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()`},
	},
}
