package memory

import "heritage-quiz-service/internal/domain"

// HeritageBank returns the built-in cultural heritage question bank.
// Each call builds a fresh value.
func HeritageBank() domain.QuestionBank {
	return domain.QuestionBank{
		"monuments": {
			ID:   "monuments",
			Name: "Monuments & Architecture",
			Questions: []domain.Question{
				{
					Prompt:       "Which Mughal emperor built the Taj Mahal?",
					Options:      []string{"Shah Jahan", "Akbar", "Aurangzeb", "Humayun"},
					CorrectIndex: 0,
					Explanation:  "Shah Jahan built the Taj Mahal between 1632-1653 as a mausoleum for his beloved wife Mumtaz Mahal.",
					Image:        "images/quiz/taj-mahal-quiz.jpg",
				},
				{
					Prompt:       "The Konark Sun Temple is located in which Indian state?",
					Options:      []string{"Rajasthan", "Gujarat", "Odisha", "Karnataka"},
					CorrectIndex: 2,
					Explanation:  "The Konark Sun Temple is located in Konark, Odisha, and was built in the 13th century by King Narasimhadeva I.",
					Image:        "images/quiz/konark-quiz.jpg",
				},
				{
					Prompt:       "How many wheels does the Konark Sun Temple chariot have?",
					Options:      []string{"12", "18", "24", "36"},
					CorrectIndex: 2,
					Explanation:  "The Konark Sun Temple is designed as a colossal chariot with 24 intricately carved wheels, each serving as a sundial.",
				},
				{
					Prompt:       "Which architectural style is the Red Fort built in?",
					Options:      []string{"Dravidian", "Indo-Islamic", "Nagara", "Vesara"},
					CorrectIndex: 1,
					Explanation:  "The Red Fort in Delhi is built in the Indo-Islamic architectural style, combining Islamic and Indian elements.",
				},
				{
					Prompt:       "The Khajuraho temples were built by which dynasty?",
					Options:      []string{"Gupta", "Chandela", "Chola", "Pallava"},
					CorrectIndex: 1,
					Explanation:  "The Khajuraho temples were built by the Chandela dynasty between 950-1050 CE.",
				},
				{
					Prompt:       "Which monument is known as the 'Dream in Marble'?",
					Options:      []string{"Taj Mahal", "Victoria Memorial", "Hawa Mahal", "Mysore Palace"},
					CorrectIndex: 0,
					Explanation:  "The Taj Mahal is often called the 'Dream in Marble' due to its ethereal beauty and white marble construction.",
				},
				{
					Prompt:       "The Ajanta Caves primarily depict which religion?",
					Options:      []string{"Hinduism", "Buddhism", "Jainism", "Sikhism"},
					CorrectIndex: 1,
					Explanation:  "The Ajanta Caves are Buddhist cave monuments featuring paintings and sculptures depicting the life of Buddha.",
				},
				{
					Prompt:       "Which is the largest mosque in India?",
					Options:      []string{"Jama Masjid Delhi", "Mecca Masjid", "Taj-ul-Masajid", "Fatehpur Sikri Mosque"},
					CorrectIndex: 2,
					Explanation:  "Taj-ul-Masajid in Bhopal is considered one of the largest mosques in India.",
				},
				{
					Prompt:       "The Sanchi Stupa was built by which emperor?",
					Options:      []string{"Chandragupta", "Ashoka", "Harsha", "Kanishka"},
					CorrectIndex: 1,
					Explanation:  "The Great Stupa at Sanchi was originally built by Emperor Ashoka in the 3rd century BCE.",
				},
				{
					Prompt:       "Which fort is known as the 'Gibraltar of the East'?",
					Options:      []string{"Golconda Fort", "Gwalior Fort", "Chittorgarh Fort", "Mehrangarh Fort"},
					CorrectIndex: 1,
					Explanation:  "Gwalior Fort is known as the 'Gibraltar of the East' due to its strategic location and massive structure.",
				},
			},
		},
		"culture": {
			ID:   "culture",
			Name: "Culture & Traditions",
			Questions: []domain.Question{
				{
					Prompt:       "Which festival is known as the 'Festival of Lights'?",
					Options:      []string{"Holi", "Diwali", "Dussehra", "Karva Chauth"},
					CorrectIndex: 1,
					Explanation:  "Diwali, also known as Deepavali, is called the 'Festival of Lights' and celebrates the victory of light over darkness.",
				},
				{
					Prompt:       "The classical dance form Bharatanatyam originated in which state?",
					Options:      []string{"Kerala", "Karnataka", "Tamil Nadu", "Andhra Pradesh"},
					CorrectIndex: 2,
					Explanation:  "Bharatanatyam is a classical dance form that originated in Tamil Nadu and is one of the oldest dance forms in India.",
				},
				{
					Prompt:       "Which Indian festival involves throwing colored powder?",
					Options:      []string{"Diwali", "Holi", "Navratri", "Onam"},
					CorrectIndex: 1,
					Explanation:  "Holi, the festival of colors, involves throwing colored powder (gulal) and water to celebrate the arrival of spring.",
				},
				{
					Prompt:       "The traditional Indian greeting 'Namaste' means:",
					Options:      []string{"Hello", "Goodbye", "I bow to you", "Welcome"},
					CorrectIndex: 2,
					Explanation:  "Namaste comes from Sanskrit meaning 'I bow to you' and is a respectful greeting acknowledging the divine in others.",
				},
				{
					Prompt:       "Which state is famous for the Kathakali dance form?",
					Options:      []string{"Tamil Nadu", "Kerala", "Karnataka", "Odisha"},
					CorrectIndex: 1,
					Explanation:  "Kathakali is a classical dance-drama form that originated in Kerala, known for its elaborate costumes and makeup.",
				},
				{
					Prompt:       "The festival of Onam is primarily celebrated in which state?",
					Options:      []string{"Tamil Nadu", "Kerala", "Karnataka", "Goa"},
					CorrectIndex: 1,
					Explanation:  "Onam is the harvest festival of Kerala, celebrating the return of the legendary King Mahabali.",
				},
				{
					Prompt:       "Which musical instrument is Lord Krishna often depicted playing?",
					Options:      []string{"Sitar", "Tabla", "Flute", "Veena"},
					CorrectIndex: 2,
					Explanation:  "Lord Krishna is traditionally depicted playing the flute (bansuri), symbolizing divine music and love.",
				},
				{
					Prompt:       "The art of henna decoration is called:",
					Options:      []string{"Rangoli", "Mehendi", "Kolam", "Alpana"},
					CorrectIndex: 1,
					Explanation:  "Mehendi is the art of decorating hands and feet with henna, especially during festivals and weddings.",
				},
			},
		},
		"history": {
			ID:   "history",
			Name: "History & Dynasties",
			Questions: []domain.Question{
				{
					Prompt:       "Who was the founder of the Mauryan Empire?",
					Options:      []string{"Ashoka", "Chandragupta Maurya", "Bindusara", "Brihadratha"},
					CorrectIndex: 1,
					Explanation:  "Chandragupta Maurya founded the Mauryan Empire in 322 BCE with the help of Chanakya (Kautilya).",
				},
				{
					Prompt:       "The Gupta period is known as the:",
					Options:      []string{"Dark Age", "Golden Age", "Iron Age", "Medieval Period"},
					CorrectIndex: 1,
					Explanation:  "The Gupta period (320-550 CE) is called the Golden Age of India due to achievements in arts, science, and literature.",
				},
				{
					Prompt:       "Who built the city of Fatehpur Sikri?",
					Options:      []string{"Babur", "Akbar", "Shah Jahan", "Aurangzeb"},
					CorrectIndex: 1,
					Explanation:  "Emperor Akbar built Fatehpur Sikri in 1571 as his capital, though it was abandoned due to water scarcity.",
				},
				{
					Prompt:       "The Battle of Panipat (1526) was fought between:",
					Options:      []string{"Babur and Ibrahim Lodi", "Akbar and Hemu", "Ahmad Shah Abdali and Marathas", "Prithviraj and Ghori"},
					CorrectIndex: 0,
					Explanation:  "The First Battle of Panipat in 1526 was fought between Babur and Ibrahim Lodi, establishing Mughal rule in India.",
				},
				{
					Prompt:       "Which Chola king built the Brihadeeswarar Temple?",
					Options:      []string{"Rajendra Chola I", "Rajaraja Chola I", "Kulottunga Chola I", "Vijayalaya Chola"},
					CorrectIndex: 1,
					Explanation:  "Rajaraja Chola I built the magnificent Brihadeeswarar Temple in Thanjavur around 1010 CE.",
				},
				{
					Prompt:       "The Vijayanagara Empire was founded by:",
					Options:      []string{"Harihara and Bukka", "Krishnadevaraya", "Saluva Narasimha", "Aliya Rama Raya"},
					CorrectIndex: 0,
					Explanation:  "The Vijayanagara Empire was founded by brothers Harihara and Bukka in 1336 CE.",
				},
			},
		},
		"mixed": {
			ID:   "mixed",
			Name: "Mixed Challenge",
			Questions: []domain.Question{
				{
					Prompt:       "Which UNESCO World Heritage Site is known as the 'Pink City'?",
					Options:      []string{"Jodhpur", "Jaipur", "Udaipur", "Bikaner"},
					CorrectIndex: 1,
					Explanation:  "Jaipur is known as the 'Pink City' due to the pink-colored buildings in its old city area.",
				},
				{
					Prompt:       "The ancient university of Nalanda was located in which present-day state?",
					Options:      []string{"Uttar Pradesh", "Bihar", "West Bengal", "Odisha"},
					CorrectIndex: 1,
					Explanation:  "Nalanda University was located in present-day Bihar and was a renowned center of learning from 5th to 12th century CE.",
				},
				{
					Prompt:       "Which Indian classical music has two main traditions?",
					Options:      []string{"Hindustani and Carnatic", "Dhrupad and Khayal", "Thumri and Ghazal", "Bhajan and Kirtan"},
					CorrectIndex: 0,
					Explanation:  "Indian classical music has two main traditions: Hindustani (North Indian) and Carnatic (South Indian).",
				},
				{
					Prompt:       "The Ellora Caves represent which three religions?",
					Options:      []string{"Hinduism, Buddhism, Christianity", "Hinduism, Buddhism, Jainism", "Buddhism, Jainism, Islam", "Hinduism, Jainism, Sikhism"},
					CorrectIndex: 1,
					Explanation:  "The Ellora Caves showcase the religious harmony of ancient India with Hindu, Buddhist, and Jain temples carved side by side.",
				},
			},
		},
	}
}
