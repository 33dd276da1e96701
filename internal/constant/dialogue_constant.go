package constant

// DialogueScript is the fixed assistant prompt sequence. Prompts are selected
// purely by stage position; user input never changes the order.
var DialogueScript = []string{
	"Hi! Let's generate some notes. What topic are you studying?",
	"Great! Can you provide a brief overview of the topic?",
	"What are the key concepts or ideas related to this topic?",
	"Can you explain the first key concept in detail?",
	"What about the second key concept?",
	"Are there any important formulas or equations related to this topic?",
	"Can you list some examples or applications of this topic?",
	"What are the main challenges or common mistakes related to this topic?",
	"Do you have any specific questions or areas you'd like to focus on?",
	"Let's summarize what we have so far. Does this look good?",
	"Would you like to add any additional notes or details?",
	"Do you want to create flashcards for the key concepts?",
	"Should we generate some MCQs for practice?",
	"What type of MCQs would you like? (e.g., multiple-choice, true/false)",
	"How many MCQs would you like to generate?",
	"Do you want to include explanations for the answers?",
	"Would you like to review the notes before finalizing?",
	"Do you want to download the notes as a file?",
	"Is there anything else you'd like to add?",
	"Thank you for using the AI Learning Assistant! Your notes are ready.",
}

// DialogueTerminalMessage is repeated once the script is exhausted.
const DialogueTerminalMessage = "We've completed the note generation process. Thank you!"
