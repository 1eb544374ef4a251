package sqlite

const (
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
		VALUES (?, ?, ?)
	`

	queryInsertRecord = `
		INSERT INTO records (
			id, page_id, title, price, rating, availability,
			category, store, source_url, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`

	queryRecordsTableExists = `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = 'records'
	`
)
