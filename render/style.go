package render

// pageStyle is embedded into every rendered document so the output stays
// fully self-contained (viewable offline, printable, downloadable).
const pageStyle = `
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            line-height: 1.6;
            color: #333;
            background: #f8f9fa;
        }

        .recipe-container {
            background: white;
            border-radius: 15px;
            box-shadow: 0 4px 6px rgba(0,0,0,0.1);
            overflow: hidden;
        }

        .recipe-header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            text-align: center;
        }

        .recipe-title {
            font-size: 2.5rem;
            margin: 0 0 10px 0;
            font-weight: 700;
        }

        .recipe-stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
            gap: 15px;
            margin: 20px 0;
            padding: 20px;
            background: #f8f9fa;
        }

        .stat-item {
            text-align: center;
            padding: 15px;
            background: white;
            border-radius: 10px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.05);
        }

        .stat-value {
            font-size: 1.5rem;
            font-weight: bold;
            color: #667eea;
            margin-bottom: 5px;
        }

        .stat-label {
            font-size: 0.9rem;
            color: #666;
            text-transform: uppercase;
            letter-spacing: 1px;
        }

        .section {
            padding: 30px 40px;
        }

        .section-title {
            font-size: 1.8rem;
            color: #2c3e50;
            margin-bottom: 20px;
            padding-bottom: 10px;
            border-bottom: 3px solid #667eea;
            display: inline-block;
        }

        .ingredients-list {
            background: #f8f9fa;
            padding: 25px;
            border-radius: 15px;
            margin-bottom: 30px;
        }

        .ingredient {
            display: flex;
            justify-content: space-between;
            align-items: center;
            padding: 12px 0;
            border-bottom: 1px solid #e9ecef;
        }

        .ingredient:last-child {
            border-bottom: none;
        }

        .ingredient-name {
            font-weight: 500;
            flex: 1;
        }

        .ingredient-amount {
            font-weight: bold;
            color: #667eea;
            margin-left: 15px;
        }

        .ingredient-notes {
            font-size: 0.85rem;
            color: #666;
            margin-top: 4px;
            font-style: italic;
        }

        .steps-container {
            counter-reset: step-counter;
        }

        .step {
            counter-increment: step-counter;
            margin: 25px 0;
            padding: 25px;
            background: #f8f9fa;
            border-radius: 15px;
            position: relative;
            margin-left: 40px;
        }

        .step::before {
            content: counter(step-counter);
            position: absolute;
            left: -40px;
            top: 25px;
            width: 50px;
            height: 50px;
            background: linear-gradient(135deg, #667eea, #764ba2);
            color: white;
            border-radius: 50%;
            display: flex;
            align-items: center;
            justify-content: center;
            font-weight: bold;
            font-size: 1.2rem;
            box-shadow: 0 4px 8px rgba(102, 126, 234, 0.3);
        }

        .step-title {
            font-weight: 600;
            font-size: 1.2rem;
            margin-bottom: 10px;
            color: #2c3e50;
        }

        .step-instruction {
            margin-bottom: 15px;
            line-height: 1.7;
        }

        .step-details {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(120px, 1fr));
            gap: 10px;
            margin-top: 15px;
            font-size: 0.9rem;
        }

        .step-detail {
            background: rgba(102, 126, 234, 0.1);
            padding: 8px 12px;
            border-radius: 20px;
            text-align: center;
        }

        .nutrition-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(120px, 1fr));
            gap: 20px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 25px;
            border-radius: 15px;
            margin: 20px 0;
        }

        .nutrition-item {
            text-align: center;
            padding: 15px;
            background: rgba(255, 255, 255, 0.1);
            border-radius: 10px;
        }

        .nutrition-value {
            font-size: 1.8rem;
            font-weight: bold;
            margin-bottom: 5px;
        }

        .nutrition-label {
            font-size: 0.9rem;
            opacity: 0.9;
            text-transform: uppercase;
        }

        .allergens, .equipment, .safety-notes {
            background: #fff3cd;
            border: 2px solid #ffeaa7;
            border-radius: 10px;
            padding: 20px;
            margin: 20px 0;
        }

        .allergens {
            background: #ffe6e6;
            border-color: #ffcccc;
        }

        .safety-notes {
            background: #ffe6e6;
            border-color: #ffcccc;
        }

        .warning-title {
            font-weight: bold;
            margin-bottom: 10px;
            color: #856404;
        }

        .allergens .warning-title {
            color: #d63384;
        }

        @media (max-width: 768px) {
            body { padding: 10px; }
            .recipe-header { padding: 30px 20px; }
            .recipe-title { font-size: 2rem; }
            .section { padding: 20px; }
            .step { margin-left: 20px; padding: 20px; }
            .step::before { left: -20px; width: 35px; height: 35px; font-size: 1rem; }
            .recipe-stats { grid-template-columns: repeat(2, 1fr); }
        }

        @media print {
            body { background: white; }
            .recipe-container { box-shadow: none; }
        }
`
