package challenge

var DecisionMakingPrompt = `Generate a gamified decision-making challenge for restaurant managers facing:`

var DecisionMakingClosing = `Provide a scoring system based on the effectiveness of decisions made.
Return only the challenge, without any additional explanations.`

var ScenarioSimulationPrompt = `Predict upcoming bottlenecks in restaurant management (e.g., staff shortages, inventory issues) and provide a virtual case study to solve, focusing on:`

var ScenarioSimulationClosing = `Describe the early warning signs, walk through the case study step by step and explain how managers can measure that the bottleneck is solved.`

var SustainabilityPrompt = `Create a sustainability-focused restaurant challenge, encouraging managers to optimize waste reduction and energy efficiency with rewards, focusing on:`

var SustainabilityClosing = `List the challenge goals, the measurable targets and the rewards managers earn for reaching them.`

var PeakHoursPrompt = `Analyze peak hour trends and suggest real-time AI-driven strategies for managers to balance workload and demand efficiently, focusing on:`

var PeakHoursClosing = `Give concrete staffing, kitchen and front-of-house adjustments and the signals managers should watch while applying them.`
