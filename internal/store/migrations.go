package store

const schema = `
CREATE TABLE IF NOT EXISTS activity (
    id                 TEXT PRIMARY KEY,
    author             TEXT NOT NULL DEFAULT '[deleted]',
    post_link          TEXT NOT NULL DEFAULT '',
    comment_link       TEXT NOT NULL DEFAULT '',
    parent_post_id     TEXT NOT NULL DEFAULT '',
    created_date       TEXT NOT NULL,
    epoch              TEXT NOT NULL DEFAULT '',
    score              INTEGER NOT NULL DEFAULT 0,
    adjusted_score     INTEGER NOT NULL DEFAULT 0,
    flair              TEXT NOT NULL DEFAULT '',
    subreddit          TEXT NOT NULL DEFAULT '',
    kind               TEXT NOT NULL,
    body               TEXT NOT NULL DEFAULT '',
    content_type       TEXT NOT NULL DEFAULT 'text',
    moderator          INTEGER NOT NULL DEFAULT 0,
    rewards_exempt     INTEGER NOT NULL DEFAULT 0,
    sentiment_raw      INTEGER NOT NULL DEFAULT 50,
    sentiment_adjusted INTEGER NOT NULL DEFAULT 50,
    sentiment_label    TEXT NOT NULL DEFAULT 'neutral',
    project_mentions   TEXT NOT NULL DEFAULT '[]',
    project_scores     TEXT NOT NULL DEFAULT '{}',
    project_sentiments TEXT NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS idx_activity_author ON activity(author);
CREATE INDEX IF NOT EXISTS idx_activity_created ON activity(created_date);
CREATE INDEX IF NOT EXISTS idx_activity_epoch ON activity(epoch);

CREATE TABLE IF NOT EXISTS projects (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL,
    slug     TEXT NOT NULL UNIQUE,
    category TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS project_keywords (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL REFERENCES projects(id),
    keyword    TEXT NOT NULL,
    is_active  INTEGER NOT NULL DEFAULT 1,
    UNIQUE (project_id, keyword)
);

CREATE TABLE IF NOT EXISTS project_mentions (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id     INTEGER NOT NULL REFERENCES projects(id),
    item_id        TEXT NOT NULL REFERENCES activity(id),
    created_date   TEXT NOT NULL,
    weighted_score INTEGER NOT NULL,
    kind           TEXT NOT NULL,
    UNIQUE (project_id, item_id)
);

CREATE INDEX IF NOT EXISTS idx_mentions_project ON project_mentions(project_id);
CREATE INDEX IF NOT EXISTS idx_mentions_item ON project_mentions(item_id);
`
