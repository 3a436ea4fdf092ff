// DhanDiary Stats - Admin Analytics API for the DhanDiary Finance App
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dhandiary-stats

//go:build integration

package testinfra

// Schema mirrors the tables the sync service owns. Only the columns the
// stats queries read are load-bearing; the rest keep fixtures realistic.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
  id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  clerk_id        TEXT UNIQUE NOT NULL,
  email           TEXT,
  name            TEXT,
  status          TEXT NOT NULL DEFAULT 'active',
  created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  server_version  BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transactions (
  id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  user_id         UUID NOT NULL REFERENCES users(id),
  client_id       TEXT,
  server_version  BIGINT NOT NULL DEFAULT 0,
  type            TEXT NOT NULL CHECK (type IN ('income', 'expense')),
  amount          NUMERIC(14, 2) NOT NULL,
  category        TEXT,
  note            TEXT,
  currency        TEXT NOT NULL DEFAULT 'INR',
  date            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  sync_status     TEXT,
  need_sync       BOOLEAN NOT NULL DEFAULT false,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  deleted_at      TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS daily_summaries (
  user_id    UUID NOT NULL REFERENCES users(id),
  date       DATE NOT NULL,
  count      INTEGER NOT NULL DEFAULT 0,
  total_in   NUMERIC(14, 2) NOT NULL DEFAULT 0,
  total_out  NUMERIC(14, 2) NOT NULL DEFAULT 0,
  PRIMARY KEY (user_id, date)
);

CREATE TABLE IF NOT EXISTS monthly_summaries (
  year        INTEGER NOT NULL,
  month       INTEGER NOT NULL,
  total_in    NUMERIC(14, 2) NOT NULL DEFAULT 0,
  total_out   NUMERIC(14, 2) NOT NULL DEFAULT 0,
  count       INTEGER NOT NULL DEFAULT 0,
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  PRIMARY KEY (year, month)
);
`

// SeedFixture inserts a small, fixed data set:
//
//   - 3 active users (one created 90 days ago with no recent activity)
//   - 4 live transactions (income 1000.00 + 250.50, expense 400.00 + 99.99)
//     and 1 soft-deleted expense of 5000.00
//   - 1 transaction flagged need_sync
//   - today's daily summary and the current month's monthly summary
const SeedFixture = `
INSERT INTO users (id, clerk_id, email, status, created_at, updated_at) VALUES
  ('00000000-0000-0000-0000-000000000001', 'user_1', 'a@example.com', 'active', NOW() - INTERVAL '2 days', NOW()),
  ('00000000-0000-0000-0000-000000000002', 'user_2', 'b@example.com', 'active', NOW() - INTERVAL '10 days', NOW()),
  ('00000000-0000-0000-0000-000000000003', 'user_3', 'c@example.com', 'active', NOW() - INTERVAL '90 days', NOW() - INTERVAL '90 days');

INSERT INTO transactions (user_id, type, amount, currency, date, need_sync, deleted_at) VALUES
  ('00000000-0000-0000-0000-000000000001', 'income',  1000.00, 'INR', NOW(), false, NULL),
  ('00000000-0000-0000-0000-000000000001', 'expense',  400.00, 'INR', NOW(), true,  NULL),
  ('00000000-0000-0000-0000-000000000002', 'income',   250.50, 'USD', NOW(), false, NULL),
  ('00000000-0000-0000-0000-000000000002', 'expense',   99.99, 'INR', NOW(), false, NULL),
  ('00000000-0000-0000-0000-000000000002', 'expense', 5000.00, 'INR', NOW(), false, NOW());

INSERT INTO daily_summaries (user_id, date, count, total_in, total_out) VALUES
  ('00000000-0000-0000-0000-000000000001', CURRENT_DATE, 2, 1000.00, 400.00),
  ('00000000-0000-0000-0000-000000000002', CURRENT_DATE, 2, 250.50, 99.99);

INSERT INTO monthly_summaries (year, month, total_in, total_out, count) VALUES
  (EXTRACT(YEAR FROM CURRENT_DATE)::INT, EXTRACT(MONTH FROM CURRENT_DATE)::INT, 1250.50, 499.99, 4);
`
