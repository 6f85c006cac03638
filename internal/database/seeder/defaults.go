package seeder

func Defaults() []Seeder {
	return []Seeder{
		JobBoardsSeeder{},
		AdminSeeder{},
	}
}
