package postgres

// SQL queries for page and record storage

const (
	// queryListRecords returns every record joined with its page URL, newest first.
	// id breaks created_at ties so the order is deterministic.
	queryListRecords = `
		SELECT
			r.id, r.title, r.price, r.rating, r.availability,
			r.category, r.store, r.source_url, r.created_at,
			COALESCE(p.url, '')
		FROM records r
		LEFT JOIN pages p ON p.id = r.page_id
		ORDER BY r.created_at DESC, r.id ASC
	`

	queryInsertPage = `
		INSERT INTO pages (id, url, created_at)
		VALUES ($1, $2, $3)
	`

	// queryInsertRecord skips ids that already exist. RowsAffected is 0 for a skip.
	queryInsertRecord = `
		INSERT INTO records (
			id, page_id, title, price, rating, availability,
			category, store, source_url, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

	queryRecordsTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'records'
		)
	`
)
