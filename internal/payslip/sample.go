package payslip

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SampleBatch is the reference document offered for download.
func SampleBatch() BatchDocument {
	amt := decimal.NewFromInt
	return BatchDocument{
		Organization: &Organization{
			Name:               "Acme Technologies Pvt Ltd",
			Address:            "42 MG Road",
			City:               "Bengaluru",
			State:              "Karnataka",
			PostalCode:         "560001",
			Country:            "India",
			Phone:              "+91 80 4000 1234",
			Email:              "payroll@acme.example",
			Website:            "https://acme.example",
			RegistrationNumber: "U72900KA2015PTC000000",
			TaxID:              "29ABCDE1234F1Z5",
		},
		Employees: []EmployeeEntry{
			{
				Employee: &Employee{
					EmployeeID:        "EMP001",
					Name:              "Priya Sharma",
					Email:             "priya.sharma@acme.example",
					Designation:       "Software Engineer",
					Department:        "Engineering",
					JoiningDate:       "2022-04-01",
					BankAccountNumber: "123456789012",
					BankName:          "State Bank of India",
					PANNumber:         "ABCDE1234F",
					PFNumber:          "KA/BLR/0012345/000/0000123",
				},
				Periods: []PeriodEntry{
					{
						Period: &Period{Month: 1, Year: 2025},
						Earnings: []LineItem{
							{Name: "Basic Salary", Amount: amt(50000)},
							{Name: "HRA", Amount: amt(20000)},
							{Name: "Special Allowance", Amount: amt(5000)},
						},
						Deductions: []LineItem{
							{Name: "Provident Fund", Amount: amt(6000)},
							{Name: "Professional Tax", Amount: amt(200)},
						},
						Remarks: "January salary",
					},
					{
						Period: &Period{Month: 2, Year: 2025},
						Earnings: []LineItem{
							{Name: "Basic Salary", Amount: amt(50000)},
							{Name: "HRA", Amount: amt(20000)},
						},
						Deductions: []LineItem{
							{Name: "Provident Fund", Amount: amt(6000)},
						},
					},
				},
			},
			{
				Employee: &Employee{
					EmployeeID:  "EMP002",
					Name:        "Rahul Verma",
					Email:       "rahul.verma@acme.example",
					Designation: "Accountant",
					Department:  "Finance",
				},
				Periods: []PeriodEntry{
					{
						Period: &Period{Month: 1, Year: 2025},
						Earnings: []LineItem{
							{Name: "Basic Salary", Amount: amt(40000)},
							{Name: "Conveyance", Amount: amt(1600)},
						},
						Deductions: []LineItem{
							{Name: "Provident Fund", Amount: amt(4800)},
						},
					},
				},
			},
		},
		Currency:            DefaultCurrencyCode,
		AuthorizedSignatory: "Anita Rao, HR Manager",
	}
}

// SampleBatchJSON is SampleBatch as indented JSON.
func SampleBatchJSON() ([]byte, error) {
	return json.MarshalIndent(SampleBatch(), "", "  ")
}
