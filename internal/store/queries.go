package store

// SQL query constants. PostgresStore methods reference these.

const favoriteColumns = `id, title, price::float8, currency, thumbnail, created_at, updated_at`

const (
	queryAddFavorite = `
		INSERT INTO favorites (id, title, price, currency, thumbnail, created_at, updated_at)
		VALUES (@id, @title, @price, @currency, @thumbnail, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			thumbnail = EXCLUDED.thumbnail,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryGetFavorite = `SELECT ` + favoriteColumns + ` FROM favorites WHERE id = $1`

	queryRemoveFavorite = `DELETE FROM favorites WHERE id = $1`

	queryUpdateFavoritePrice = `
		UPDATE favorites SET
			previous_price = CASE WHEN price <> @price THEN price ELSE previous_price END,
			title = @title,
			price = @price,
			refreshed_at = now(),
			updated_at = now()
		WHERE id = @id`
)
