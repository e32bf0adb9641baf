package mysql

const upsertAccommodationSQL = `
INSERT INTO accommodations
  (slug, name, description, price_original, price_discounted, unit, display_order, published)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name             = VALUES(name),
  description      = VALUES(description),
  price_original   = VALUES(price_original),
  price_discounted = VALUES(price_discounted),
  unit             = VALUES(unit),
  display_order    = VALUES(display_order),
  published        = VALUES(published),
  updated_at       = CURRENT_TIMESTAMP
`

const upsertComboPackageSQL = `
INSERT INTO combo_packages
  (slug, name, subtitle, price_adult, price_child, price_adult_original, price_child_original,
   requires_accommodation, display_order, published)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name                   = VALUES(name),
  subtitle               = VALUES(subtitle),
  price_adult            = VALUES(price_adult),
  price_child            = VALUES(price_child),
  price_adult_original   = VALUES(price_adult_original),
  price_child_original   = VALUES(price_child_original),
  requires_accommodation = VALUES(requires_accommodation),
  display_order          = VALUES(display_order),
  published              = VALUES(published),
  updated_at             = CURRENT_TIMESTAMP
`

const upsertDayTripPackageSQL = `
INSERT INTO day_trip_packages
  (slug, name, subtitle, price_adult, price_child, bbq_price_adult, bbq_price_child,
   display_order, published)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name            = VALUES(name),
  subtitle        = VALUES(subtitle),
  price_adult     = VALUES(price_adult),
  price_child     = VALUES(price_child),
  bbq_price_adult = VALUES(bbq_price_adult),
  bbq_price_child = VALUES(bbq_price_child),
  display_order   = VALUES(display_order),
  published       = VALUES(published),
  updated_at      = CURRENT_TIMESTAMP
`

const upsertPostSQL = `
INSERT INTO blog_posts
  (slug, title, excerpt, content, cover_image, author, published, published_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title        = VALUES(title),
  excerpt      = VALUES(excerpt),
  content      = VALUES(content),
  cover_image  = VALUES(cover_image),
  author       = VALUES(author),
  published    = VALUES(published),
  published_at = VALUES(published_at),
  updated_at   = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES — public pages only ever see published rows, in display order.
// -----------------------------------------------------------------------------

const listAccommodationsSQL = `
SELECT slug, name, description, price_original, price_discounted, unit, display_order, published
FROM accommodations
WHERE published = 1
ORDER BY display_order, slug
`

const listComboPackagesSQL = `
SELECT slug, name, subtitle, price_adult, price_child, price_adult_original, price_child_original,
       requires_accommodation, display_order, published
FROM combo_packages
WHERE published = 1
ORDER BY display_order, slug
`

const listDayTripPackagesSQL = `
SELECT slug, name, subtitle, price_adult, price_child, bbq_price_adult, bbq_price_child,
       display_order, published
FROM day_trip_packages
WHERE published = 1
ORDER BY display_order, slug
`

const listPostsSQL = `
SELECT id, slug, title, excerpt, cover_image, author, published, published_at
FROM blog_posts
WHERE published = 1
ORDER BY published_at DESC, id DESC
LIMIT ?
`

const getPostSQL = `
SELECT id, slug, title, excerpt, content, cover_image, author, published, published_at
FROM blog_posts
WHERE slug = ? AND published = 1
`
