package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS projection (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at           TEXT NOT NULL,
    currency             TEXT NOT NULL,
    principal            REAL NOT NULL,
    annual_rate_percent  REAL NOT NULL,
    years                REAL NOT NULL,
    monthly_contribution REAL NOT NULL,
    total_value          TEXT NOT NULL,
    principal_total      TEXT NOT NULL,
    contributions_total  TEXT NOT NULL,
    interest_earned      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projection_years (
    projection_id        INTEGER NOT NULL REFERENCES projection(id) ON DELETE CASCADE,
    year                 REAL NOT NULL,
    balance              TEXT NOT NULL,
    principal            TEXT NOT NULL,
    contributions        TEXT NOT NULL,
    interest             TEXT NOT NULL,
    PRIMARY KEY (projection_id, year)
);

CREATE INDEX IF NOT EXISTS idx_projection_created ON projection(created_at);
`
