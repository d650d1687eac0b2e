package model

// Course is one graded course in the CGPA record.
type Course struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Grade    string `json:"grade"`
	Semester string `json:"semester"`
}

// CGPARecord owns the course list. CurrentCGPA is derived from the courses.
type CGPARecord struct {
	Courses     []Course `json:"courses"`
	CurrentCGPA float64  `json:"currentCGPA"`
	TargetCGPA  float64  `json:"targetCGPA"`
}
