// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package note

import "time"

// Seed returns the sample notes shown on first launch.
func Seed(now time.Time) []Note {
	day := func(month time.Month, d int) time.Time {
		return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
	}
	return []Note{
		{
			ID:       "1",
			Title:    "Shopping list",
			Content:  "Milk\nBread\nCat food",
			Category: "TODAY",
			Date:     now,
			Color:    ColorCoral,
		},
		{
			ID:       "2",
			Title:    "Ideas",
			Content:  "Record a vlog for the road trip next week. One long video for YT and another ...",
			Category: "25 NOV",
			Date:     day(time.November, 25),
			Color:    ColorOrange,
		},
		{
			ID:        "3",
			Title:     "Diary",
			Content:   "Today was a good day. I managed to finish most of my tasks...",
			Category:  "17 NOV",
			Date:      day(time.November, 17),
			Color:     ColorPink,
			Protected: true,
		},
		{
			ID:       "4",
			Title:    "Appointments",
			Content:  "Call doctor Smith for a new appointment.\nAsk about the medicine ...",
			Category: "15 NOV",
			Date:     day(time.November, 15),
			Color:    ColorPurple,
		},
	}
}
