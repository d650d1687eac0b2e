package advice

import (
	"fmt"
	"math"
)

var (
	onboardingTips = []string{
		"Start with foundational courses in your major to build a strong base.",
		"Consider taking courses with known supportive professors for your first semester.",
		"Balance your course load with a mix of difficulty levels.",
	}
	maintainTips = []string{
		"Great job! You've reached your target CGPA. Consider challenging yourself with advanced courses.",
		"Look into research opportunities or internships to enhance your skills.",
		"Consider mentoring other students or becoming a teaching assistant.",
	}
	closeGapTips = []string{
		"You're close to your target! Focus on courses where you excel to boost your CGPA.",
		"Consider retaking any courses with low grades if your university allows grade replacement.",
		"Form or join study groups for your more challenging classes.",
	}
	moderateTips = []string{
		"Take advantage of professor office hours and academic support services.",
		"Consider a lighter course load to focus more deeply on each subject.",
		"Identify your learning style and seek courses that match it.",
		"Develop a strategic study schedule with specific goals for each course.",
	}
	majorTips = []string{
		"Meet with an academic advisor to create a detailed improvement plan.",
		"Consider starting with foundational courses to rebuild your academic confidence.",
		"Enroll in study skills workshops offered by your university.",
		"Take advantage of all available tutoring services.",
		"Consider summer courses to focus on challenging subjects with fewer distractions.",
	}
)

// CourseRecommendations returns the advice band for the gap between target
// and current CGPA. The returned slice is a copy.
func CourseRecommendations(current, target float64) []string {
	var tips []string
	gap := target - current
	switch {
	case current == 0:
		tips = onboardingTips
	case gap <= 0:
		tips = maintainTips
	case gap < 0.5:
		tips = closeGapTips
	case gap < 1.0:
		tips = moderateTips
	default:
		tips = majorTips
	}
	return append([]string(nil), tips...)
}

// RequiredGrade explains what average the planned credits need to lift the
// CGPA from current to target.
func RequiredGrade(current, target float64, currentCredits, plannedCredits int) string {
	if currentCredits == 0 {
		return fmt.Sprintf("You need to maintain a %.2f GPA in your courses.", target)
	}
	if plannedCredits <= 0 {
		return "You have no upcoming credits planned, so there is nothing to average over. Add planned credits to see the grade you need."
	}

	required := RequiredGPA(current, target, currentCredits, plannedCredits)
	if required > 4.0 {
		return fmt.Sprintf("You'll need to earn more than a 4.0 in your upcoming %d credits, which isn't possible. Consider adjusting your target or taking more credits.", plannedCredits)
	}
	if required <= 0 {
		return "You've already achieved your target CGPA. Any passing grade will maintain it."
	}
	return fmt.Sprintf("You need to maintain a %.2f GPA (%s) in your upcoming %d credits.", required, LetterBand(required), plannedCredits)
}

// RequiredGPA is the average needed over plannedCredits. It returns NaN when
// plannedCredits is not positive.
func RequiredGPA(current, target float64, currentCredits, plannedCredits int) float64 {
	if plannedCredits <= 0 {
		return math.NaN()
	}
	totalAfter := float64(currentCredits + plannedCredits)
	needed := target*totalAfter - current*float64(currentCredits)
	return needed / float64(plannedCredits)
}

// LetterBand maps a GPA to the lowest letter grade that sustains it.
func LetterBand(gpa float64) string {
	switch {
	case gpa >= 3.7:
		return "A- or higher"
	case gpa >= 3.3:
		return "B+ or higher"
	case gpa >= 3.0:
		return "B or higher"
	case gpa >= 2.7:
		return "B- or higher"
	case gpa >= 2.3:
		return "C+ or higher"
	case gpa >= 2.0:
		return "C or higher"
	default:
		return "D or higher"
	}
}

// TargetProgress is how far current is toward target, capped at 100.
func TargetProgress(current, target float64) float64 {
	if current <= 0 || target <= 0 {
		return 0
	}
	return math.Min(current/target*100, 100)
}
