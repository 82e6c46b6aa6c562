package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"student-performance-dashboard/internal/domain/entity"
	domainRepo "student-performance-dashboard/internal/domain/repository"
)

// Required dataset columns, matched by header name so column order in the
// source file does not matter.
const (
	columnName       = "Name"
	columnCourse     = "Course"
	columnCity       = "City"
	columnGender     = "Gender"
	columnMarks      = "Marks"
	columnAttendance = "Attendance (%)"
)

type csvStudentRepository struct {
	path string
}

func NewCSVStudentRepository(path string) domainRepo.StudentRepository {
	return &csvStudentRepository{path: path}
}

func (r *csvStudentRepository) LoadAll(ctx context.Context) ([]entity.StudentRecord, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrDataUnavailable, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", domainRepo.ErrDataUnavailable, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrDataUnavailable, err)
	}

	var records []entity.StudentRecord
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domainRepo.ErrDataUnavailable, line, err)
		}

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domainRepo.ErrDataUnavailable, line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// mapColumns resolves the index of every required column in the header.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	required := []string{columnName, columnCourse, columnCity, columnGender, columnMarks, columnAttendance}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return columns, nil
}

func parseRow(row []string, columns map[string]int) (entity.StudentRecord, error) {
	field := func(name string) (string, error) {
		idx := columns[name]
		if idx >= len(row) {
			return "", fmt.Errorf("missing value for column %q", name)
		}
		return row[idx], nil
	}

	var record entity.StudentRecord
	var err error

	if record.Name, err = field(columnName); err != nil {
		return entity.StudentRecord{}, err
	}
	if record.Course, err = field(columnCourse); err != nil {
		return entity.StudentRecord{}, err
	}
	if record.City, err = field(columnCity); err != nil {
		return entity.StudentRecord{}, err
	}
	if record.Gender, err = field(columnGender); err != nil {
		return entity.StudentRecord{}, err
	}

	marks, err := field(columnMarks)
	if err != nil {
		return entity.StudentRecord{}, err
	}
	if record.Marks, err = strconv.ParseFloat(marks, 64); err != nil {
		return entity.StudentRecord{}, fmt.Errorf("invalid marks value %q", marks)
	}

	attendance, err := field(columnAttendance)
	if err != nil {
		return entity.StudentRecord{}, err
	}
	if record.Attendance, err = strconv.ParseFloat(attendance, 64); err != nil {
		return entity.StudentRecord{}, fmt.Errorf("invalid attendance value %q", attendance)
	}

	return record, nil
}
