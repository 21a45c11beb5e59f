package diet

// conditionBlock pairs a condition with the guidance text it contributes.
// Blocks are evaluated in declaration order to keep output stable.
type conditionBlock struct {
	condition string
	text      string
}

const healthyOverview = `Healthy Diet Recommendations

Based on your health assessment, you appear to be in good health with no specific conditions detected.
A balanced diet is recommended to maintain your current health status and prevent future issues.

The following general dietary guidelines will help you maintain optimal health:
• Eat a variety of fruits and vegetables daily (aim for 5+ servings)
• Choose whole grains over refined carbohydrates
• Include lean proteins in most meals
• Consume healthy fats like those found in olive oil, avocados, and nuts
• Stay hydrated by drinking plenty of water throughout the day
• Limit added sugars, salt, and highly processed foods

This balanced approach to nutrition provides essential nutrients while helping maintain a healthy weight and reducing the risk of chronic diseases.
`

const healthyFoodsToEat = `Recommended Foods for Overall Health

FRUITS & VEGETABLES:
• All fresh fruits - especially berries, apples, citrus fruits
• Dark leafy greens - spinach, kale, collard greens, arugula
• Cruciferous vegetables - broccoli, cauliflower, Brussels sprouts
• Colorful vegetables - bell peppers, carrots, tomatoes, sweet potatoes

PROTEINS:
• Lean meats - chicken breast, turkey, lean cuts of beef
• Fish - especially fatty fish like salmon, mackerel, and sardines (2-3 times per week)
• Plant proteins - beans, lentils, chickpeas, tofu, tempeh
• Eggs - preferably free-range

WHOLE GRAINS:
• Oats
• Brown rice
• Quinoa
• Whole wheat bread and pasta
• Barley, farro, buckwheat

HEALTHY FATS:
• Avocados
• Nuts and seeds - almonds, walnuts, flaxseeds, chia seeds
• Olive oil
• Fatty fish

DAIRY & ALTERNATIVES:
• Low-fat or fat-free milk
• Plain yogurt (especially Greek yogurt)
• Small amounts of cheese
• Fortified plant milks (almond, soy, oat)

BEVERAGES:
• Water (primary beverage)
• Green tea
• Black coffee (in moderation)
• Herbal teas
`

const healthyFoodsToAvoid = `Foods to Limit for Overall Health

While a healthy diet focuses on what to include rather than strict restrictions, these foods are best consumed only occasionally:

LIMIT THESE FOODS:
• Highly processed foods with long ingredient lists
• Fast food and fried foods
• Processed meats (bacon, sausage, hot dogs, deli meats)
• Sugary drinks (soda, sweetened juices, sports drinks)
• Refined carbohydrates (white bread, pastries, white rice)
• Excessive alcohol
• Foods with added sugars
• Foods high in sodium
• Foods with partially hydrogenated oils (trans fats)

HEALTHIER SUBSTITUTIONS:
• Instead of soda → Try water with lemon or sparkling water
• Instead of chips → Try nuts or air-popped popcorn
• Instead of white bread → Try whole grain bread
• Instead of ice cream → Try Greek yogurt with fruit
• Instead of candy → Try fresh or dried fruit
• Instead of processed meats → Try fresh-cooked lean meats
`

const healthyMealPlan = `Sample Meal Plan for Overall Health

BREAKFAST OPTIONS:
• Oatmeal topped with berries, nuts, and a drizzle of honey
• Greek yogurt parfait with fresh fruit and granola
• Whole grain toast with avocado and a poached egg
• Vegetable omelet with side of fruit

LUNCH OPTIONS:
• Quinoa bowl with roasted vegetables, chickpeas, and tahini dressing
• Large salad with mixed greens, grilled chicken, vegetables, and olive oil dressing
• Whole grain wrap with hummus, turkey, and plenty of vegetables
• Lentil soup with side salad and whole grain roll

DINNER OPTIONS:
• Baked salmon with roasted sweet potatoes and steamed broccoli
• Stir-fry with tofu, plenty of vegetables, and brown rice
• Grilled chicken with quinoa and roasted vegetables
• Bean and vegetable chili with small side of corn bread

SNACK OPTIONS:
• Apple with 1-2 tablespoons of nut butter
• Small handful of mixed nuts and dried fruit
• Greek yogurt with berries
• Hummus with vegetables for dipping
• Whole grain crackers with avocado

HYDRATION:
• Aim for 8 glasses of water throughout the day
• Herbal teas are a good option, especially in colder weather
`

var overviewBlocks = []conditionBlock{
	{Anemia, "For Anemia: Focus on iron-rich foods, vitamin C to improve iron absorption, and vitamin B12 sources.\n"},
	{Hypertension, "For Hypertension: Follow a reduced-sodium diet with plenty of potassium-rich foods. The DASH diet approach is recommended.\n"},
	{Diabetes, "For Diabetes: Focus on low glycemic index foods, consistent carbohydrate intake, and regular meal timing.\n"},
	{HeartDisease, "For Heart Disease: Follow a heart-healthy diet low in saturated fats, with emphasis on omega-3 fatty acids, fiber, and plant sterols.\n"},
	{VitaminDDeficiency, "For Vitamin D Deficiency: Include vitamin D fortified foods and fatty fish in your diet. Consider supplementation as recommended by your doctor.\n"},
	{KidneyDisease, "For Kidney Disease: Control protein, phosphorus, potassium, and sodium intake. Fluid restrictions may be necessary.\n"},
	{HighCholesterol, "For High Cholesterol: Focus on heart-healthy fats, soluble fiber, and plant sterols. Limit saturated and trans fats.\n"},
}

const generalFoodsToEat = `GENERAL HEALTHY FOODS (RECOMMENDED FOR EVERYONE):
• Fresh fruits and vegetables - aim for a variety of colors
• Whole grains - brown rice, quinoa, whole wheat bread
• Lean proteins - skinless poultry, fish, legumes
• Healthy fats - olive oil, avocados, nuts

`

var foodsToEatBlocks = []conditionBlock{
	{Anemia, `FOR ANEMIA:
• Iron-rich foods: lean red meat, liver, shellfish, beans, spinach, fortified cereals
• Vitamin C foods to improve iron absorption: citrus fruits, bell peppers, strawberries, tomatoes
• Vitamin B12 sources: meat, fish, eggs, dairy, fortified plant milks
• Folate-rich foods: dark leafy greens, legumes, avocados

`},
	{Hypertension, `FOR HYPERTENSION (DASH DIET):
• Potassium-rich foods: bananas, potatoes, spinach, beans, yogurt
• Calcium sources: low-fat dairy, fortified plant milks, leafy greens
• Magnesium sources: nuts, seeds, whole grains, leafy greens
• Fiber-rich foods: fruits, vegetables, whole grains, legumes

`},
	{Diabetes, `FOR DIABETES:
• Low glycemic index foods: most non-starchy vegetables, most fruits, legumes, whole grains
• High fiber foods: beans, lentils, oats, vegetables
• Healthy fats: nuts, seeds, avocados, olive oil
• Quality proteins: fish, skinless poultry, tofu, eggs

`},
	{HeartDisease, `FOR HEART DISEASE:
• Omega-3 rich foods: fatty fish (salmon, mackerel, sardines), walnuts, flaxseeds
• Foods with plant sterols: vegetables, fruits, whole grains, nuts
• Soluble fiber: oats, barley, beans, fruits
• Antioxidant-rich foods: berries, dark chocolate (70%+ cocoa), colorful vegetables

`},
	{VitaminDDeficiency, `FOR VITAMIN D DEFICIENCY:
• Vitamin D rich foods: fatty fish, egg yolks, mushrooms exposed to UV light
• Vitamin D fortified foods: milk, plant milks, orange juice, cereals

`},
	{KidneyDisease, `FOR KIDNEY DISEASE:
• Lower protein options: egg whites, smaller portions of meat and fish
• Lower phosphorus foods: rice milk (unfortified), breads without whole grains, corn or rice cereals
• Lower potassium fruits: apples, berries, grapes, pineapple
• Lower potassium vegetables: carrots, green beans, cabbage, lettuce

`},
	{HighCholesterol, `FOR HIGH CHOLESTEROL:
• Soluble fiber: oats, barley, fruits, legumes
• Omega-3 fatty acids: fatty fish, flaxseeds, chia seeds
• Plant sterols: vegetables, fruits, nuts, seeds
• Soy protein: tofu, tempeh, edamame, soy milk

`},
}

const generalFoodsToAvoid = `GENERAL FOODS TO LIMIT (FOR EVERYONE):
• Highly processed foods with artificial additives
• Excessive sugar and sweetened beverages
• Trans fats and fried foods

`

var foodsToAvoidBlocks = []conditionBlock{
	{Anemia, `FOR ANEMIA:
• Foods that inhibit iron absorption when eaten with iron-rich foods: coffee, tea, excessive calcium
• Foods with phytates if consumed with iron sources: whole grains, legumes (spacing these out from iron-rich meals can help)

`},
	{Hypertension, `FOR HYPERTENSION:
• High sodium foods: processed meats, canned soups, frozen dinners, salty snacks
• Alcohol (limit to moderate consumption if at all)
• Caffeine (monitor its effects on your blood pressure)

`},
	{Diabetes, `FOR DIABETES:
• High glycemic index foods: white bread, white rice, candy, sugary drinks
• Added sugars: desserts, sweetened beverages, many packaged foods
• Large portions of fruit juice or dried fruit
• Excessive carbohydrates in one sitting

`},
	{HeartDisease, `FOR HEART DISEASE:
• Foods high in saturated fats: fatty meats, full-fat dairy, coconut oil
• Trans fats: fried foods, baked goods with partially hydrogenated oils
• High sodium foods: processed foods, canned soups, salty snacks
• Excessive sugar: desserts, sweetened beverages

`},
	{VitaminDDeficiency, `FOR VITAMIN D DEFICIENCY:
• No specific foods to avoid, but be aware that few foods naturally contain vitamin D
• Consuming extremely low fat diets may reduce vitamin D absorption

`},
	{KidneyDisease, `FOR KIDNEY DISEASE:
• High phosphorus foods: dairy, nuts, seeds, whole grains, processed foods with phosphate additives
• High potassium foods: bananas, oranges, potatoes, tomatoes, avocados
• High sodium foods: processed foods, canned foods, salty snacks
• Excessive protein: large portions of meat, poultry, fish

`},
	{HighCholesterol, `FOR HIGH CHOLESTEROL:
• Foods high in saturated fats: fatty meats, full-fat dairy, butter, coconut oil
• Trans fats: fried foods, commercial baked goods, anything with partially hydrogenated oils
• Excessive dietary cholesterol (less important than saturated fat): organ meats, egg yolks in large quantities

`},
}

const anemiaMeals = `BREAKFAST:
• Iron-fortified cereal with strawberries (vitamin C to enhance iron absorption)
• 1 hard-boiled egg
• Glass of orange juice (vitamin C)

LUNCH:
• Spinach salad with grilled chicken, bell peppers, and citrus dressing
• Whole grain roll
• Water with lemon

DINNER:
• Lean beef stir-fry with broccoli, bell peppers, and brown rice
• Strawberry and spinach side salad
• Water

SNACKS:
• Handful of dried apricots and pumpkin seeds
• Hummus with bell pepper strips

`

const hypertensionMeals = `BREAKFAST:
• Overnight oats with banana and a sprinkle of cinnamon
• Low-fat yogurt
• Herbal tea

LUNCH:
• Quinoa bowl with grilled chicken, roasted vegetables, and avocado
• Mixed berries
• Water

DINNER:
• Baked salmon with dill
• Steamed spinach and sweet potato
• Mixed green salad with olive oil and lemon dressing
• Water with lime

SNACKS:
• Unsalted mixed nuts
• Apple slices

`

const diabetesMeals = `BREAKFAST:
• Vegetable omelet (2 eggs with spinach, tomatoes, mushrooms)
• 1 slice whole grain toast
• 1/4 avocado
• Unsweetened tea or coffee

LUNCH:
• Grilled chicken salad with mixed greens, cucumber, cherry tomatoes
• 1/2 cup quinoa
• Olive oil and vinegar dressing
• Water

DINNER:
• Baked fish with herbs
• 1/2 cup lentils
• Roasted non-starchy vegetables (broccoli, cauliflower, bell peppers)
• Water

SNACKS:
• Small apple with 1 tablespoon almond butter
• 1/4 cup cottage cheese with cucumber slices

`

const cardiacMeals = `BREAKFAST:
• Oatmeal with ground flaxseeds, berries, and cinnamon
• Unsweetened plant milk
• Green tea

LUNCH:
• Bean and vegetable soup
• Side salad with olive oil and lemon dressing
• 1 piece of fruit
• Water

DINNER:
• Grilled salmon with herbs
• Steamed vegetables (broccoli, carrots)
• 1/2 cup brown rice
• Water

SNACKS:
• Small handful of walnuts
• Apple slices

`

const kidneyMeals = `BREAKFAST:
• Egg whites (2-3) with low-potassium vegetables (bell peppers, onions)
• 1 slice white toast with small amount of unsalted butter
• 1/2 cup berries
• Water

LUNCH:
• Chicken sandwich on white bread with lettuce and cucumber
• Low-potassium fruit (apple or grapes)
• Water

DINNER:
• Small portion of lean protein (chicken, fish)
• White rice
• Green beans or carrots
• Water

SNACKS:
• Rice cakes with small amount of unsalted butter
• Low-potassium fruit (pineapple)

`

const defaultMeals = `BREAKFAST:
• Oatmeal topped with berries, nuts, and a drizzle of honey
• Greek yogurt on the side
• Green tea or water

LUNCH:
• Mediterranean quinoa bowl with chickpeas, cucumber, tomatoes, olives, feta
• Olive oil and lemon dressing
• 1 piece of fruit
• Water

DINNER:
• Grilled salmon with herbs
• Roasted vegetables (sweet potatoes, Brussels sprouts, carrots)
• Quinoa or brown rice
• Water

SNACKS:
• Apple with almond butter
• Hummus with vegetable sticks
• Small handful of mixed nuts

`

const mealPlanNotes = `NOTES:
• Adjust portion sizes based on your specific caloric needs
• Drink plenty of water throughout the day
• This meal plan is a general guideline - consult with a dietitian for a fully personalized plan
`
