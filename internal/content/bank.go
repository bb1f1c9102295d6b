package content

import "flashlight-portfolio/internal/domain"

// DefaultBankID names the built-in flashlight bank.
const DefaultBankID = "flashlight"

// DefaultBank returns the nine built-in flashlight questions.
func DefaultBank() domain.QuestionBank {
	return domain.QuestionBank{
		ID: DefaultBankID,
		Questions: []domain.Question{
			{
				Prompt:  "Which of the following frontend frameworks has Azim worked with?",
				Correct: "React, Vue, Angular",
				Options: []string{"React, Vue, Angular", "React, Ember, Vue", "Angular, Svelte, React", "NextJS, Node.js, Laravel"},
			},
			{
				Prompt:  "Which project did Azim work on as a Lead Frontend React Developer?",
				Correct: "Life by IFG",
				Options: []string{"Eroses", "Retail FX Currency", "Life by IFG", "Kata Konsumen"},
			},
			{
				Prompt:  "In which project did Azim integrate Appsflyer in a web React application?",
				Correct: "Life by IFG",
				Options: []string{"Eroses", "Life by IFG", "Fishlog WMS", "Response Reminder CMS"},
			},
			{
				Prompt:  "Which platform did Azim use for deploying the 'Kata Konsumen' project?",
				Correct: "Google Cloud",
				Options: []string{"AWS", "Azure", "Google Cloud", "IBM Cloud"},
			},
			{
				Prompt:  "Which backend framework did Azim use in the Sherpa project?",
				Correct: "NestJS",
				Options: []string{"NestJS", "Ruby on Rails", "Laravel", "Express.js"},
			},
			{
				Prompt:  "Which database did Azim use in the Fishlog WMS project?",
				Correct: "PostgreSQL",
				Options: []string{"MongoDB", "PostgreSQL", "SQL Lite", "MySQL"},
			},
			{
				Prompt:  "What was the main focus of the 'Tweakmove Pass' project Azim worked on?",
				Correct: "Sanboxing application for gym check-ins",
				Options: []string{"Sanboxing application for gym check-ins", "Sales forecasting", "Retail currency management", "Insurance product app"},
			},
			{
				Prompt:  "Which technology did Azim use to build Rest APIs in multiple projects?",
				Correct: "Node.js",
				Options: []string{"Node.js", "Ruby on Rails", "Laravel", "NextJS"},
			},
			{
				Prompt:  "What was Azim's role in the Life by IFG project?",
				Correct: "Lead Frontend React Developer",
				Options: []string{"Frontend Developer", "React Developer", "Lead Frontend React Developer", "Fullstack Developer"},
			},
		},
	}
}

// Banks returns the built-in banks keyed by id, for static loaders.
func Banks() map[string]domain.QuestionBank {
	return map[string]domain.QuestionBank{DefaultBankID: DefaultBank()}
}
