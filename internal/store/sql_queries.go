package store

const (
	createUser = `INSERT INTO users (uuid, username, hashed_password, salt, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING uuid, username, hashed_password, salt, role, created_at;`

	findUserByUsername = `SELECT uuid, username, hashed_password, salt, role, created_at
    FROM users
    WHERE username = $1;`

	getUserByUUID = `SELECT uuid, username, hashed_password, salt, role, created_at
    FROM users
    WHERE uuid = $1;`

	createDocument = `INSERT INTO documents (owner_uuid, filename, filepath, category, author, summary)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING docid, upload_date;`

	getDocumentByID = `SELECT docid, owner_uuid, filename, filepath, category, author, summary, upload_date
    FROM documents
    WHERE docid = $1;`

	appendAccessLog = `INSERT INTO access_logs (user_uuid, doc_uuid, action)
    VALUES ($1, $2, $3);`

	listAccessLogs = `SELECT log_id, user_uuid, doc_uuid, action, timestamp
    FROM access_logs
    ORDER BY log_id DESC
    LIMIT $1 OFFSET $2;`
)
