package mysql

// Re-ingesting a place always reactivates it.
const upsertPlaceSQL = `
INSERT INTO places
  (id, name, kind, lat, lng, tags, activities, pricing, archived)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, 0)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  kind       = VALUES(kind),
  lat        = VALUES(lat),
  lng        = VALUES(lng),
  tags       = VALUES(tags),
  activities = VALUES(activities),
  pricing    = VALUES(pricing),
  archived   = 0,
  updated_at = CURRENT_TIMESTAMP
`

const archivePlaceSQL = `UPDATE places SET archived = 1 WHERE id = ?`

const insertMissSQL = `
INSERT INTO ingest_misses (id, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  http_status = VALUES(http_status),
  reason      = VALUES(reason),
  seen_at     = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const placeColumns = `id, name, kind, lat, lng, tags, activities, pricing`

const getPlaceSQL = `
SELECT ` + placeColumns + `
FROM places
WHERE id = ? AND archived = 0
`

// Stable order keeps rankings reproducible across requests.
const listActivePlacesSQL = `
SELECT ` + placeColumns + `
FROM places
WHERE archived = 0
ORDER BY id
`
