package redis

import "fmt"

const ns = "seatly:v1"

func KeyProperty(propertyID int64) string {
	return fmt.Sprintf("%s:property:%d", ns, propertyID)
}

func KeyLayout(propertyID int64) string {
	return fmt.Sprintf("%s:property:%d:layout", ns, propertyID)
}

func KeyShifts() string {
	return ns + ":shifts"
}

func KeyStudentDetail(studentID int64) string {
	return fmt.Sprintf("%s:student:%d:detail", ns, studentID)
}
