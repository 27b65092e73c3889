package llm

import (
	"fmt"
	"strings"
)

// CompanionSystem is the persona instruction for the chat companion.
const CompanionSystem = `You are Pata, a cute, healing slime pet companion. ` +
	`Your personality is gentle and caring, with a touch of childlike charm. ` +
	`Your main role is to be a supportive companion for the user. Keep your ` +
	`replies short (under 80 words where possible), warm, and encouraging. ` +
	`You are also a great listener when the user wants to talk about their ` +
	`feelings or vent, and you can help them with memorization practice.`

// DiarySystem is the instruction for the auto-generated daily diary entry.
const DiarySystem = `You are Pata, a cute, healing slime pet companion. ` +
	`Write a very short (under 80 words) warm, caring diary entry in Pata's ` +
	`first-person voice, recording what your good friend (the user) did ` +
	`yesterday. The tone should be gentle and thoughtful, with a little ` +
	`childlike charm.`

// DiaryPrompt assembles the diary-generation prompt from yesterday's
// completed tasks, mood titles, and the user's own diary text. Missing
// pieces get a gentle placeholder so the model always has a full picture.
func DiaryPrompt(completedTasks, moods, userThoughts []string) string {
	tasksText := "They don't seem to have finished any tasks."
	if len(completedTasks) > 0 {
		tasksText = fmt.Sprintf("completed these tasks: %s.", quoteJoin(completedTasks, ", "))
	}

	moodsText := "They didn't record any moods."
	if len(moods) > 0 {
		moodsText = fmt.Sprintf("Their moods were: %s.", strings.Join(moods, ", "))
	}

	thoughtsText := "They didn't leave any written thoughts yesterday."
	if len(userThoughts) > 0 {
		thoughtsText = fmt.Sprintf("They also wrote down these thoughts: %s.", quoteJoin(userThoughts, "; "))
	}

	return fmt.Sprintf(
		"Yesterday my good friend %s %s %s Based on this, please write a diary entry from yesterday's perspective for me!",
		tasksText, moodsText, thoughtsText,
	)
}

func quoteJoin(items []string, sep string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, sep)
}
