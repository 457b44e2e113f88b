// Package signdata holds the built-in sign language catalog that seeds the
// database on first start.
package signdata

import "zonosign/internal/models"

// Categories lists the lesson categories in display order
var Categories = []models.SignCategory{
	{ID: "common", Title: "Learn Common Hand Signs", Description: "Essential everyday signs for beginners", Position: 1},
	{ID: "advanced", Title: "Learn Advanced Hand Signs", Description: "Complex signs for intermediate learners", Position: 2},
	{ID: "iconic", Title: "Learn Iconic Hand Signs", Description: "Visual and iconic signs that represent their meaning", Position: 3},
	{ID: "names", Title: "Learn Names with Hand Signs", Description: "Fingerspelling and name signs for personal identification", Position: 4},
}

// Signs lists every catalog entry. Position is the order within the
// category, which is also the question order in lessons.
var Signs = []models.Sign{
	// Common
	{ID: "hello", CategoryID: "common", Word: "Hello", Description: "A greeting gesture used to say hi", Tag: "greetings", Difficulty: "beginner",
		Instructions: "Hold your hand near your forehead with palm facing outward, fingers together, and move it slightly forward and down in a salute-like motion.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/hello.jpg", VideoURL: "https://www.signingsavvy.com/video/hello.mp4", Position: 1},
	{ID: "thank-you", CategoryID: "common", Word: "Thank You", Description: "Express gratitude with a handshape near the mouth", Tag: "greetings", Difficulty: "beginner",
		Instructions: "Place your open hand near your chin, palm facing you, fingers pointing up, then move it forward slightly.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/thankyou.jpg", VideoURL: "https://www.signingsavvy.com/video/thankyou.mp4", Position: 2},
	{ID: "please", CategoryID: "common", Word: "Please", Description: "A polite request gesture with hand on chest", Tag: "greetings", Difficulty: "beginner",
		Instructions: "Place your open hand on your chest, palm facing in, and make a small circular motion.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/please.jpg", VideoURL: "https://www.signingsavvy.com/video/please.mp4", Position: 3},
	{ID: "sorry", CategoryID: "common", Word: "Sorry", Description: "Apologetic gesture with hand circling on chest", Tag: "greetings", Difficulty: "beginner",
		Instructions: "Form an 'A' handshape, place it near your chest, and make a small circular motion.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/sorry.jpg", VideoURL: "https://www.signingsavvy.com/video/sorry.mp4", Position: 4},
	{ID: "yes", CategoryID: "common", Word: "Yes", Description: "Affirmative gesture with a nodding fist", Tag: "responses", Difficulty: "beginner",
		Instructions: "Form an 'A' handshape and nod it up and down, mimicking a head nod.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/yes.jpg", VideoURL: "https://www.signingsavvy.com/video/yes.mp4", Position: 5},
	{ID: "no", CategoryID: "common", Word: "No", Description: "Negative gesture with fingers closing", Tag: "responses", Difficulty: "beginner",
		Instructions: "Hold your index and middle fingers extended, thumb holding the other fingers, then close the fingers to the thumb.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/no.jpg", VideoURL: "https://www.signingsavvy.com/video/no.mp4", Position: 6},
	{ID: "water", CategoryID: "common", Word: "Water", Description: "Gesture representing drinking water", Tag: "basic-needs", Difficulty: "beginner",
		Instructions: "Form a 'W' handshape with three fingers extended, hold it near your chin, and tap twice.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/water.jpg", VideoURL: "https://www.signingsavvy.com/video/water.mp4", Position: 7},
	{ID: "eat", CategoryID: "common", Word: "Eat", Description: "Gesture mimicking eating food", Tag: "basic-needs", Difficulty: "beginner",
		Instructions: "Form a flattened 'O' handshape and bring it to your mouth, as if eating.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/eat.jpg", VideoURL: "https://www.signingsavvy.com/video/eat.mp4", Position: 8},

	// Advanced
	{ID: "understand", CategoryID: "advanced", Word: "Understand", Description: "Gesture indicating comprehension", Tag: "emotions", Difficulty: "intermediate",
		Instructions: "Place your index finger near your forehead, palm down, then flick it upward and outward.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/understand.jpg", VideoURL: "https://www.signingsavvy.com/video/understand.mp4", Position: 1},
	{ID: "remember", CategoryID: "advanced", Word: "Remember", Description: "Gesture for recalling memory", Tag: "mental-actions", Difficulty: "intermediate",
		Instructions: "Place an 'A' handshape near your forehead, then move it down to touch the thumb of your other 'A' handshape.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/remember.jpg", VideoURL: "https://www.signingsavvy.com/video/remember.mp4", Position: 2},
	{ID: "important", CategoryID: "advanced", Word: "Important", Description: "Gesture emphasizing significance", Tag: "concepts", Difficulty: "intermediate",
		Instructions: "Form 'F' handshapes with both hands, hold them near your chin, and bring them together slightly.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/important.jpg", VideoURL: "https://www.signingsavvy.com/video/important.mp4", Position: 3},
	{ID: "question", CategoryID: "advanced", Word: "Question", Description: "Gesture for asking or inquiring", Tag: "communication", Difficulty: "intermediate",
		Instructions: "Form an 'X' handshape with your dominant hand and tilt it slightly forward with a questioning expression.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/question.jpg", VideoURL: "https://www.signingsavvy.com/video/question.mp4", Position: 4},
	{ID: "explain", CategoryID: "advanced", Word: "Explain", Description: "Gesture for clarification or explanation", Tag: "communication", Difficulty: "intermediate",
		Instructions: "Form 'F' handshapes with both hands, palms facing each other, and move them back and forth alternately.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/explain.jpg", VideoURL: "https://www.signingsavvy.com/video/explain.mp4", Position: 5},
	{ID: "different", CategoryID: "advanced", Word: "Different", Description: "Gesture indicating contrast or difference", Tag: "concepts", Difficulty: "intermediate",
		Instructions: "Cross your index fingers in an 'X' shape, then pull them apart horizontally.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/different.jpg", VideoURL: "https://www.signingsavvy.com/video/different.mp4", Position: 6},
	{ID: "decision", CategoryID: "advanced", Word: "Decision", Description: "Gesture for making a choice", Tag: "mental-actions", Difficulty: "intermediate",
		Instructions: "Form 'D' handshapes, hold them near your forehead, then move them down and slightly apart.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/decision.jpg", VideoURL: "https://www.signingsavvy.com/video/decision.mp4", Position: 7},
	{ID: "experience", CategoryID: "advanced", Word: "Experience", Description: "Gesture for lived knowledge", Tag: "concepts", Difficulty: "intermediate",
		Instructions: "Place an 'A' handshape near your temple, then pull it away while closing into a fist.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/experience.jpg", VideoURL: "https://www.signingsavvy.com/video/experience.mp4", Position: 8},

	// Iconic
	{ID: "tree", CategoryID: "iconic", Word: "Tree", Description: "Gesture mimicking a tree's shape", Tag: "nature", Difficulty: "beginner",
		Instructions: "Rest your elbow on your other hand, spread your fingers upward to represent branches, and slightly sway.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/tree.jpg", VideoURL: "https://www.signingsavvy.com/video/tree.mp4", Position: 1},
	{ID: "house", CategoryID: "iconic", Word: "House", Description: "Gesture outlining a house structure", Tag: "places", Difficulty: "beginner",
		Instructions: "Form a peaked roof with both hands, fingertips touching, then move hands down and apart to form walls.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/house.jpg", VideoURL: "https://www.signingsavvy.com/video/house.mp4", Position: 2},
	{ID: "car", CategoryID: "iconic", Word: "Car", Description: "Gesture mimicking driving", Tag: "transportation", Difficulty: "beginner",
		Instructions: "Hold both hands as if gripping a steering wheel and move them slightly as if steering.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/car.jpg", VideoURL: "https://www.signingsavvy.com/video/car.mp4", Position: 3},
	{ID: "airplane", CategoryID: "iconic", Word: "Airplane", Description: "Gesture representing an airplane flying", Tag: "transportation", Difficulty: "beginner",
		Instructions: "Extend your hand with thumb and pinky out, palm down, and move it forward in a flying motion.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/airplane.jpg", VideoURL: "https://www.signingsavvy.com/video/airplane.mp4", Position: 4},
	{ID: "book", CategoryID: "iconic", Word: "Book", Description: "Gesture mimicking opening a book", Tag: "objects", Difficulty: "beginner",
		Instructions: "Place your palms together, then open them outward as if opening a book.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/book.jpg", VideoURL: "https://www.signingsavvy.com/video/book.mp4", Position: 5},
	{ID: "telephone", CategoryID: "iconic", Word: "Telephone", Description: "Gesture for holding a phone", Tag: "communication", Difficulty: "beginner",
		Instructions: "Form a 'Y' handshape and hold it to your ear, as if using a phone.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/telephone.jpg", VideoURL: "https://www.signingsavvy.com/video/telephone.mp4", Position: 6},
	{ID: "computer", CategoryID: "iconic", Word: "Computer", Description: "Gesture representing typing on a keyboard", Tag: "technology", Difficulty: "intermediate",
		Instructions: "Hold both hands in front, palms down, and wiggle fingers as if typing.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/computer.jpg", VideoURL: "https://www.signingsavvy.com/video/computer.mp4", Position: 7},
	{ID: "music", CategoryID: "iconic", Word: "Music", Description: "Gesture for musical rhythm", Tag: "arts", Difficulty: "intermediate",
		Instructions: "Wave your open hand near your opposite forearm, palm facing you, in a rhythmic motion.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/music.jpg", VideoURL: "https://www.signingsavvy.com/video/music.mp4", Position: 8},

	// Names
	{ID: "a-letter", CategoryID: "names", Word: "Letter A", Description: "First letter of the alphabet in fingerspelling", Tag: "alphabet", Difficulty: "beginner",
		Instructions: "Form a fist with your thumb resting on the side of your index finger, palm facing outward.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/letter-a.jpg", VideoURL: "https://www.signingsavvy.com/video/letter-a.mp4", Position: 1},
	{ID: "b-letter", CategoryID: "names", Word: "Letter B", Description: "Second letter of the alphabet in fingerspelling", Tag: "alphabet", Difficulty: "beginner",
		Instructions: "Hold your fingers straight up, thumb folded across the palm, palm facing outward.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/letter-b.jpg", VideoURL: "https://www.signingsavvy.com/video/letter-b.mp4", Position: 2},
	{ID: "c-letter", CategoryID: "names", Word: "Letter C", Description: "Third letter of the alphabet in fingerspelling", Tag: "alphabet", Difficulty: "beginner",
		Instructions: "Curve your fingers and thumb to form a 'C' shape, palm facing outward.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/letter-c.jpg", VideoURL: "https://www.signingsavvy.com/video/letter-c.mp4", Position: 3},
	{ID: "my-name", CategoryID: "names", Word: "My Name", Description: "Phrase to introduce your name", Tag: "introduction", Difficulty: "intermediate",
		Instructions: "Point to your chest with your index finger, then place your hand near your forehead with fingers together, followed by fingerspelling your name.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/myname.jpg", VideoURL: "https://www.signingsavvy.com/video/myname.mp4", Position: 4},
	{ID: "family", CategoryID: "names", Word: "Family", Description: "Sign representing a family unit", Tag: "relationships", Difficulty: "intermediate",
		Instructions: "Form 'F' handshapes with both hands, touch thumbs together, and move hands outward in a slight arc.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/family.jpg", VideoURL: "https://www.signingsavvy.com/video/family.mp4", Position: 5},
	{ID: "friend", CategoryID: "names", Word: "Friend", Description: "Sign indicating friendship", Tag: "relationships", Difficulty: "intermediate",
		Instructions: "Hook your index fingers together, then switch their positions, palms facing you.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/friend.jpg", VideoURL: "https://www.signingsavvy.com/video/friend.mp4", Position: 6},
	{ID: "teacher", CategoryID: "names", Word: "Teacher", Description: "Sign for an educator", Tag: "professions", Difficulty: "intermediate",
		Instructions: "Place both hands near your temples, palms down, then move them forward while opening into flat hands.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/teacher.jpg", VideoURL: "https://www.signingsavvy.com/video/teacher.mp4", Position: 7},
	{ID: "student", CategoryID: "names", Word: "Student", Description: "Sign for a learner", Tag: "professions", Difficulty: "intermediate",
		Instructions: "Hold one hand flat, palm up, and place the other hand's fingers on it, then move the top hand to your forehead.",
		ImageURL:     "https://www.signingsavvy.com/media/jpg-std/2000/student.jpg", VideoURL: "https://www.signingsavvy.com/video/student.mp4", Position: 8},
}
