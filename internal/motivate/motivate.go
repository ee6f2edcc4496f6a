// Package motivate provides the emoji sets, encouragement lines, and
// productivity tips sprinkled through timer output and notifications.
package motivate

import "math/rand/v2"

// Emoji sets keyed by timer phase.
var (
	workEmojis       = []string{"🍅", "💻", "📝", "🔨", "⚙️", "🧠", "🚀", "⏳", "🔍"}
	shortBreakEmojis = []string{"☕", "🍵", "🧘", "🌱", "🌞", "💆", "🎵", "🍃", "🌈"}
	longBreakEmojis  = []string{"🌴", "🏖️", "🎮", "📚", "🍦", "🎨", "🌿", "🧁", "🎬"}
	successEmojis    = []string{"✅", "🎉", "🏆", "💯", "🌟", "🙌", "🥳", "💪", "🌺"}
)

// Encouragement lines keyed by timer phase transition.
var (
	startWorkLines = []string{
		"Time to focus! You've got this!",
		"Let's make the most of these minutes!",
		"Deep work mode: engaged!",
		"One interval at a time.",
		"Your future self will thank you for focusing now.",
	}
	endWorkLines = []string{
		"Great job! Take a well-deserved break.",
		"Session complete! Nicely done.",
		"You've earned your rest!",
		"Excellent focus session!",
		"Progress made! Time to recharge.",
	}
	startBreakLines = []string{
		"Break time! Rest your mind.",
		"Refresh and recharge!",
		"Stretch, hydrate, breathe!",
		"Step away from the screen for a bit.",
		"Short breaks make long work sessions possible.",
	}
	endBreakLines = []string{
		"Break's over! Ready to dive back in?",
		"Refreshed and ready to go!",
		"Back to making progress!",
		"Let's keep the momentum going!",
	}
)

var tips = []string{
	"Focused intervals work best when you fully commit to the task during work periods.",
	"Keep a list of small tasks to tackle during short breaks to maintain momentum.",
	"Physical activity during breaks, like stretching, can boost your energy for the next session.",
	"Try different interval lengths to find what works best for you; not everyone is optimal at 25 minutes.",
	"Use completed sessions to estimate task sizes by tracking how many similar tasks need.",
	"The rule of three suggests focusing on completing just three main tasks per day.",
	"Noise-cancelling headphones or white noise during work intervals can improve focus.",
	"Hydration improves cognitive function, so keep water nearby during your work sessions.",
	"For creative tasks a longer interval of 40 to 60 minutes sometimes works better than the standard 25.",
	"Track your completed sessions to visualize your productivity trends over time.",
}

// pick returns a random element of the list.
func pick(list []string) string {
	return list[rand.IntN(len(list))]
}

// WorkEmoji returns a random emoji for work intervals.
func WorkEmoji() string { return pick(workEmojis) }

// BreakEmoji returns a random emoji for break intervals.
func BreakEmoji(long bool) string {
	if long {
		return pick(longBreakEmojis)
	}
	return pick(shortBreakEmojis)
}

// SuccessEmoji returns a random emoji for completed intervals.
func SuccessEmoji() string { return pick(successEmojis) }

// StartWork returns an encouragement line for the start of a work interval.
func StartWork() string { return pick(startWorkLines) }

// EndWork returns an encouragement line for a completed work interval.
func EndWork() string { return pick(endWorkLines) }

// StartBreak returns an encouragement line for the start of a break.
func StartBreak() string { return pick(startBreakLines) }

// EndBreak returns an encouragement line for the end of a break.
func EndBreak() string { return pick(endBreakLines) }

// Tip returns a random productivity tip.
func Tip() string { return pick(tips) }
