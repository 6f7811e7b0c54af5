package mysql

// Schema kept deliberately flat: one row per listing, with list-ish fields
// (amenities, images, rules) stored as JSON text, the same shape the memory
// store holds in structs.
const createListingsTableSQL = `
CREATE TABLE IF NOT EXISTS listings (
  id                  VARCHAR(64)  NOT NULL PRIMARY KEY,
  owner_id            VARCHAR(64)  NOT NULL,
  name                VARCHAR(255) NOT NULL,
  address             VARCHAR(512) NOT NULL,
  description         TEXT         NOT NULL,
  college_name        VARCHAR(255) NULL,
  distance_to_college DOUBLE       NULL,
  price               DOUBLE       NOT NULL,
  type                VARCHAR(32)  NOT NULL,
  amenities           JSON         NOT NULL,
  images              JSON         NOT NULL,
  contact_name        VARCHAR(255) NOT NULL,
  contact_phone       VARCHAR(64)  NULL,
  contact_email       VARCHAR(255) NULL,
  rating              DOUBLE       NULL,
  reviews_count       INT          NULL,
  availability        VARCHAR(16)  NOT NULL,
  gender              VARCHAR(16)  NULL,
  rules               JSON         NULL,
  seq                 BIGINT       NOT NULL AUTO_INCREMENT,
  UNIQUE KEY idx_listings_seq (seq),
  KEY idx_listings_owner (owner_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const insertListingSQL = `
INSERT INTO listings
  (id, owner_id, name, address, description, college_name, distance_to_college,
   price, type, amenities, images, contact_name, contact_phone, contact_email,
   rating, reviews_count, availability, gender, rules)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Full-record replace of the mutable fields; id and owner_id never change.
const updateListingSQL = `
UPDATE listings SET
  name                = ?,
  address             = ?,
  description         = ?,
  college_name        = ?,
  distance_to_college = ?,
  price               = ?,
  type                = ?,
  amenities           = ?,
  images              = ?,
  contact_name        = ?,
  contact_phone       = ?,
  contact_email       = ?,
  rating              = ?,
  reviews_count       = ?,
  availability        = ?,
  gender              = ?,
  rules               = ?
WHERE id = ?
`

const deleteListingSQL = `DELETE FROM listings WHERE id = ?`

const listingColumns = `
  id, owner_id, name, address, description, college_name, distance_to_college,
  price, type, amenities, images, contact_name, contact_phone, contact_email,
  rating, reviews_count, availability, gender, rules
`

// seq keeps reads in insertion order, matching the memory store's contract.
const getListingSQL = `SELECT ` + listingColumns + ` FROM listings WHERE id = ?`

const listByOwnerSQL = `SELECT ` + listingColumns + ` FROM listings WHERE owner_id = ? ORDER BY seq`

const listAllSQL = `SELECT ` + listingColumns + ` FROM listings ORDER BY seq`
