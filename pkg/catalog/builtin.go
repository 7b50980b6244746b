package catalog

import "github.com/korjavin/pantrychef/pkg/models"

var builtin = []models.Recipe{
	{
		ID:       "1",
		Title:    "Cheesy Veggie Omelette",
		ImageURL: "https://images.unsplash.com/photo-1510693206972-df098062cb71",
		CookTime: "15 mins",
		Servings: "2 servings",
		Ingredients: []string{
			"6 large eggs",
			"1/4 cup whole milk",
			"1 cup shredded cheddar",
			"1/2 cup diced bell pepper",
			"1/4 cup chopped onion",
			"1 tbsp butter",
			"salt and pepper",
		},
		Instructions: []string{
			"Whisk the eggs and milk with a pinch of salt and pepper.",
			"Melt the butter in a nonstick pan over medium heat and soften the pepper and onion.",
			"Pour in the eggs and cook until the edges set.",
			"Scatter the cheddar over one half, fold and serve.",
		},
		Nutrition: models.Nutrition{Calories: "380 kcal", Protein: "26 g", Carbs: "6 g", Fat: "28 g"},
	},
	{
		ID:       "2",
		Title:    "Garlic Butter Pasta",
		ImageURL: "https://images.unsplash.com/photo-1473093295043-cdd812d0e601",
		CookTime: "20 mins",
		Servings: "4 servings",
		Ingredients: []string{
			"400 g spaghetti",
			"4 tbsp butter",
			"6 cloves garlic",
			"1/2 cup grated parmesan",
			"2 tbsp chopped parsley",
			"1/4 tsp chili flakes",
		},
		Instructions: []string{
			"Cook the spaghetti in salted water until al dente and keep a cup of the water.",
			"Melt the butter and gently fry the sliced garlic and chili flakes.",
			"Toss the pasta in the butter with a splash of the cooking water.",
			"Finish with parmesan and parsley.",
		},
		Nutrition: models.Nutrition{Calories: "520 kcal", Protein: "16 g", Carbs: "72 g", Fat: "18 g"},
	},
	{
		ID:       "3",
		Title:    "Chicken Fried Rice",
		ImageURL: "https://images.unsplash.com/photo-1603133872878-684f208fb84b",
		CookTime: "25 mins",
		Servings: "4 servings",
		Ingredients: []string{
			"3 cups cooked rice",
			"2 chicken breasts",
			"2 large eggs",
			"1 cup frozen peas",
			"1 carrot",
			"3 tbsp soy sauce",
			"2 tbsp vegetable oil",
			"3 scallions",
		},
		Instructions: []string{
			"Dice the chicken and carrot.",
			"Stir-fry the chicken in hot oil until cooked through, then set aside.",
			"Scramble the eggs, add the carrot and peas, then the rice.",
			"Return the chicken, season with soy sauce and top with scallions.",
		},
		Nutrition: models.Nutrition{Calories: "450 kcal", Protein: "32 g", Carbs: "48 g", Fat: "13 g"},
	},
	{
		ID:       "4",
		Title:    "Tomato Basil Soup",
		ImageURL: "https://images.unsplash.com/photo-1547592166-23ac45744acd",
		CookTime: "35 mins",
		Servings: "4 servings",
		Ingredients: []string{
			"2 tbsp olive oil",
			"1 onion",
			"3 cloves garlic",
			"800 g canned tomatoes",
			"2 cups vegetable broth",
			"1/2 cup heavy cream",
			"1 cup fresh basil",
			"salt and pepper",
		},
		Instructions: []string{
			"Soften the onion and garlic in the oil.",
			"Add the tomatoes and broth and simmer for 20 minutes.",
			"Blend with the basil until smooth.",
			"Stir in the cream and season to taste.",
		},
		Nutrition: models.Nutrition{Calories: "210 kcal", Protein: "4 g", Carbs: "18 g", Fat: "14 g"},
	},
	{
		ID:       "5",
		Title:    "Fluffy Pancakes",
		ImageURL: "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445",
		CookTime: "20 mins",
		Servings: "8 pancakes",
		Ingredients: []string{
			"2 cups flour",
			"2 tbsp sugar",
			"2 tsp baking powder",
			"1/2 tsp salt",
			"1.5 cups milk",
			"2 large eggs",
			"3 tbsp melted butter",
			"1 tsp vanilla extract",
		},
		Instructions: []string{
			"Mix the flour, sugar, baking powder and salt.",
			"Whisk the milk, eggs, butter and vanilla, then fold into the dry ingredients.",
			"Cook ladlefuls on a hot griddle until bubbles form, flip and cook through.",
		},
		Nutrition: models.Nutrition{Calories: "180 kcal", Protein: "5 g", Carbs: "26 g", Fat: "6 g"},
	},
	{
		ID:       "6",
		Title:    "Black Bean Tacos",
		ImageURL: "https://images.unsplash.com/photo-1565299585323-38d6b0865b47",
		CookTime: "15 mins",
		Servings: "3 servings",
		Ingredients: []string{
			"6 small tortillas",
			"2 cups black beans",
			"1 tsp cumin",
			"1 avocado",
			"1 lime",
			"1/3 cup salsa",
			"1/4 cup cilantro",
		},
		Instructions: []string{
			"Warm the beans with the cumin and mash lightly.",
			"Heat the tortillas in a dry pan.",
			"Fill with beans, sliced avocado, salsa and cilantro, and squeeze over the lime.",
		},
		Nutrition: models.Nutrition{Calories: "340 kcal", Protein: "13 g", Carbs: "52 g", Fat: "10 g"},
	},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic("catalog: invalid built-in recipes: " + err.Error())
	}
	return c
}
