package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const listingColumns = `id, source_type, source_id, lot_id, title, description,
	make, model, variant, year, km, asking_price, drivetrain, location,
	status, pass_count, relist_count, reserve, price_change_pct,
	prev_status, prev_pass_count, prev_relist_count, prev_reserve, prev_price_change_pct,
	match_outcome, scored_at, alerted_at, first_seen_at, updated_at`

// Listing queries.
const (
	// The previous-state columns only shift when the auction state changes,
	// so re-ingesting an identical payload keeps the last transition.
	queryUpsertListing = `
		INSERT INTO listings (
			source_type, source_id, lot_id, title, description,
			make, model, variant, year, km, asking_price, drivetrain, location,
			status, pass_count, relist_count, reserve, price_change_pct,
			first_seen_at, updated_at
		) VALUES (
			@source_type, @source_id, @lot_id, @title, @description,
			@make, @model, @variant, @year, @km, @asking_price, @drivetrain, @location,
			@status, @pass_count, @relist_count, @reserve, @price_change_pct,
			now(), now()
		)
		ON CONFLICT (source_type, source_id) DO UPDATE SET
			prev_status = CASE WHEN ` + stateChanged + ` THEN listings.status ELSE listings.prev_status END,
			prev_pass_count = CASE WHEN ` + stateChanged + ` THEN listings.pass_count ELSE listings.prev_pass_count END,
			prev_relist_count = CASE WHEN ` + stateChanged + ` THEN listings.relist_count ELSE listings.prev_relist_count END,
			prev_reserve = CASE WHEN ` + stateChanged + ` THEN listings.reserve ELSE listings.prev_reserve END,
			prev_price_change_pct = CASE WHEN ` + stateChanged + ` THEN listings.price_change_pct ELSE listings.prev_price_change_pct END,
			lot_id = EXCLUDED.lot_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			variant = EXCLUDED.variant,
			year = EXCLUDED.year,
			km = EXCLUDED.km,
			asking_price = EXCLUDED.asking_price,
			drivetrain = EXCLUDED.drivetrain,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			pass_count = EXCLUDED.pass_count,
			relist_count = EXCLUDED.relist_count,
			reserve = EXCLUDED.reserve,
			price_change_pct = EXCLUDED.price_change_pct,
			updated_at = now()
		RETURNING id, first_seen_at, updated_at`

	stateChanged = `(listings.status, listings.pass_count, listings.relist_count, listings.reserve, listings.price_change_pct)
			IS DISTINCT FROM (EXCLUDED.status, EXCLUDED.pass_count, EXCLUDED.relist_count, EXCLUDED.reserve, EXCLUDED.price_change_pct)`

	queryGetListingByID = `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE id = $1`

	queryListListingsToScore = `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE (scored_at IS NULL OR scored_at < updated_at)
		  AND status NOT IN ('sold', 'withdrawn')
		ORDER BY updated_at ASC
		LIMIT $1`

	queryListListingsToAlert = `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE (alerted_at IS NULL OR alerted_at < updated_at)
		  AND status NOT IN ('sold', 'withdrawn')
		ORDER BY updated_at ASC
		LIMIT $1`

	// The markers are set to the updated_at the worker loaded, not now(), so
	// a re-ingest that lands mid-run still leaves marker < updated_at.
	queryMarkListingScored = `
		UPDATE listings SET
			match_outcome = $2,
			scored_at = $3
		WHERE id = $1`

	queryMarkListingAlerted = `
		UPDATE listings SET alerted_at = $2 WHERE id = $1`
)

// Sale queries.
const (
	queryUpsertSale = `
		INSERT INTO sales (
			source_id, dealer, make, model, platform_class, trim_class, variant_raw,
			year, km, drivetrain, buy_price, sale_price, sold_at
		) VALUES (
			@source_id, @dealer, @make, @model, @platform_class, @trim_class, @variant_raw,
			@year, @km, @drivetrain, @buy_price, @sale_price, @sold_at
		)
		ON CONFLICT (source_id) DO UPDATE SET
			dealer = EXCLUDED.dealer,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			platform_class = EXCLUDED.platform_class,
			trim_class = EXCLUDED.trim_class,
			variant_raw = EXCLUDED.variant_raw,
			year = EXCLUDED.year,
			km = EXCLUDED.km,
			drivetrain = EXCLUDED.drivetrain,
			buy_price = EXCLUDED.buy_price,
			sale_price = EXCLUDED.sale_price,
			sold_at = EXCLUDED.sold_at,
			updated_at = now()
		RETURNING id`

	queryListSales = `
		SELECT id, source_id, dealer, make, model, platform_class, trim_class, variant_raw,
			year, km, drivetrain, buy_price, sale_price, sold_at
		FROM sales
		ORDER BY sold_at DESC`
)

// Fingerprint queries.
const (
	queryUpsertFingerprint = `
		INSERT INTO fingerprints (
			dealer, source_sale_id, make, model, platform_class, variant_raw, variant_family,
			year, km, km_min, km_max, km_spec_only, drivetrain, buy_price, sale_price,
			sold_at, active, do_not_buy, expires_at
		) VALUES (
			@dealer, @source_sale_id, @make, @model, @platform_class, @variant_raw, @variant_family,
			@year, @km, @km_min, @km_max, @km_spec_only, @drivetrain, @buy_price, @sale_price,
			@sold_at, @active, @do_not_buy, @expires_at
		)
		ON CONFLICT (dealer, source_sale_id) DO UPDATE SET
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			platform_class = EXCLUDED.platform_class,
			variant_raw = EXCLUDED.variant_raw,
			variant_family = EXCLUDED.variant_family,
			year = EXCLUDED.year,
			km = EXCLUDED.km,
			drivetrain = EXCLUDED.drivetrain,
			buy_price = EXCLUDED.buy_price,
			sale_price = EXCLUDED.sale_price,
			sold_at = EXCLUDED.sold_at,
			expires_at = EXCLUDED.expires_at,
			active = EXCLUDED.active AND NOT fingerprints.do_not_buy,
			updated_at = now()
		RETURNING id, do_not_buy, km_min, km_max, km_spec_only, created_at, updated_at`

	queryListActiveFingerprints = `
		SELECT id, dealer, source_sale_id, make, model, platform_class, variant_raw, variant_family,
			year, km, km_min, km_max, km_spec_only, drivetrain, buy_price, sale_price,
			sold_at, active, do_not_buy, expires_at, created_at, updated_at
		FROM fingerprints
		WHERE dealer = $1
		  AND active
		  AND NOT do_not_buy
		  AND (expires_at IS NULL OR expires_at > now())
		ORDER BY make, model, year`

	queryDeactivateExpiredFingerprints = `
		UPDATE fingerprints SET
			active = false,
			updated_at = now()
		WHERE active AND expires_at IS NOT NULL AND expires_at <= $1`
)

// Opportunity queries.
const (
	opportunityColumns = `id, source_type, source_listing_id, match_mode, make, model, variant,
		year, km, asking_price, matched_sale_id, candidate_count,
		dealer_median_price, retail_median_price, median_profit, deviation, expected_margin,
		confidence_tier, priority_level, status, notes, created_at, updated_at`

	// status is operator-driven and deliberately absent from the update set.
	queryUpsertOpportunity = `
		INSERT INTO opportunities (
			source_type, source_listing_id, match_mode, make, model, variant,
			year, km, asking_price, matched_sale_id, candidate_count,
			dealer_median_price, retail_median_price, median_profit, deviation, expected_margin,
			confidence_tier, priority_level, status, notes
		) VALUES (
			@source_type, @source_listing_id, @match_mode, @make, @model, @variant,
			@year, @km, @asking_price, @matched_sale_id, @candidate_count,
			@dealer_median_price, @retail_median_price, @median_profit, @deviation, @expected_margin,
			@confidence_tier, @priority_level, @status, @notes
		)
		ON CONFLICT (source_type, source_listing_id) DO UPDATE SET
			match_mode = EXCLUDED.match_mode,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			variant = EXCLUDED.variant,
			year = EXCLUDED.year,
			km = EXCLUDED.km,
			asking_price = EXCLUDED.asking_price,
			matched_sale_id = EXCLUDED.matched_sale_id,
			candidate_count = EXCLUDED.candidate_count,
			dealer_median_price = EXCLUDED.dealer_median_price,
			retail_median_price = EXCLUDED.retail_median_price,
			median_profit = EXCLUDED.median_profit,
			deviation = EXCLUDED.deviation,
			expected_margin = EXCLUDED.expected_margin,
			confidence_tier = EXCLUDED.confidence_tier,
			priority_level = EXCLUDED.priority_level,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING id, status, created_at, updated_at, (xmax = 0) AS inserted`

	queryGetOpportunityByID = `
		SELECT ` + opportunityColumns + `
		FROM opportunities
		WHERE id = $1`

	queryUpdateOpportunityStatus = `
		UPDATE opportunities SET
			status = $2,
			updated_at = now()
		WHERE id = $1`
)

// Alert queries.
const (
	alertColumns = `id, dedup_key, dealer, lot_id, listing_id, alert_type, reason,
		message, notified, notified_at, created_at`

	queryInsertAlert = `
		INSERT INTO alert_log (dedup_key, dealer, lot_id, listing_id, alert_type, reason, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (dedup_key) DO NOTHING
		RETURNING id, created_at`

	queryListPendingAlerts = `
		SELECT ` + alertColumns + `
		FROM alert_log
		WHERE NOT notified
		ORDER BY created_at ASC`

	queryMarkAlertsNotified = `
		UPDATE alert_log SET
			notified = true,
			notified_at = now()
		WHERE id = ANY($1)`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
