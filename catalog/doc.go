// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog provides the fixed, ordered list of images offered for
// voting. The default catalog is embedded from catalog.json.
package catalog
